package rope_test

import (
	"fmt"

	"github.com/npillmayer/rope"
)

func Example() {
	r := rope.New("hello world")
	left, right, _ := r.Split(5)
	fmt.Printf("%q | %q\n", left, right)

	left.AppendString(", goodbye")
	fmt.Println(left, "/", r)

	c, _ := r.CharAt(6)
	fmt.Printf("%c\n", c)
	// Output:
	// "hello" | " world"
	// hello, goodbye / hello world
	// w
}

func ExampleConcat() {
	a := rope.New("foo")
	b := rope.New("bar")
	c := rope.Concat(a, b)
	fmt.Println(c, c.Len(), c.Depth(), c.IsFlat())
	// Output:
	// foobar 6 1 false
}

func ExampleRope_SubSequence() {
	r := rope.Concat(rope.New("The quick "), rope.New("brown fox"))
	sub, _ := r.SubSequence(4, 15)
	fmt.Println(sub)
	_, err := r.SubSequence(8, 4)
	fmt.Println(err)
	// Output:
	// quick brown
	// rope: invalid argument: illegal subsequence [8…4) of length 19
}

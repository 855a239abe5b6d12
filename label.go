package script

import "fmt"

// labelAllocator hands out synthetic identifiers from a reserved,
// monotonically increasing namespace so they are unlikely to collide
// with user identifiers.
type labelAllocator struct {
	counter int
}

func (a *labelAllocator) next() int {
	n := a.counter
	a.counter++
	return n
}

func (a *labelAllocator) ifLabel(n int) Identifier       { return syntheticLabel("If", n) }
func (a *labelAllocator) doneLabel(n int) Identifier     { return syntheticLabel("Done", n) }
func (a *labelAllocator) loopLabel(n int) Identifier     { return syntheticLabel("Loop", n) }
func (a *labelAllocator) continueLabel(n int) Identifier { return syntheticLabel("Continue", n) }
func (a *labelAllocator) indexLabel(n int) Identifier    { return syntheticLabel("Index", n) }
func (a *labelAllocator) valuesLabel(n int) Identifier   { return syntheticLabel("Values", n) }
func (a *labelAllocator) lengthLabel(n int) Identifier   { return syntheticLabel("Length", n) }

// syntheticPrefix begins with a double underscore and a recognizable
// tag. User identifiers starting with this prefix are not protected
// from collision.
const syntheticPrefix = "__script"

func syntheticLabel(tag string, n int) Identifier {
	return Identifier(fmt.Sprintf("%s%s%d", syntheticPrefix, tag, n))
}

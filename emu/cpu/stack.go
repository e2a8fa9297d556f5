package cpu

// StackDepth is the number of return addresses the call stack holds.
const StackDepth = 16

type Stack struct {
	entries [StackDepth]uint16
	sp      int //next free slot
}

func (s *Stack) Push(addr uint16) error {
	if s.sp >= StackDepth {
		return ErrStackOverflow
	}
	s.entries[s.sp] = addr
	s.sp++
	return nil
}

func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.entries[s.sp], nil
}

// Depth is the number of addresses currently on the stack.
func (s *Stack) Depth() int {
	return s.sp
}

func (s *Stack) Reset() {
	*s = Stack{}
}

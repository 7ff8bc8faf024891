package merge

import "fmt"

func errKeyArity(base, supp int) error {
	return fmt.Errorf("join key arity mismatch: base has %d fields, supplementary has %d", base, supp)
}

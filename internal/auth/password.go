package auth

import "strings"

const specialChars = "@#$%^&+="

// Checklist is the per-rule password feedback the registration form shows
// live while the user types.
type Checklist struct {
	Length  bool
	Upper   bool
	Lower   bool
	Digit   bool
	Special bool
}

func CheckPassword(password string) Checklist {
	cl := Checklist{Length: len(password) >= 8}
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			cl.Upper = true
		case r >= 'a' && r <= 'z':
			cl.Lower = true
		case r >= '0' && r <= '9':
			cl.Digit = true
		case strings.ContainsRune(specialChars, r):
			cl.Special = true
		}
	}
	return cl
}

// OK is the combined submit-time rule: every checklist item holds.
func (c Checklist) OK() bool {
	return c.Length && c.Upper && c.Lower && c.Digit && c.Special
}

// DescribeChecklist renders one line per rule with a pass/fail mark.
func DescribeChecklist(c Checklist) []string {
	mark := func(ok bool) string {
		if ok {
			return "[x]"
		}
		return "[ ]"
	}
	return []string{
		mark(c.Length) + " at least 8 characters",
		mark(c.Upper) + " an uppercase letter",
		mark(c.Lower) + " a lowercase letter",
		mark(c.Digit) + " a digit",
		mark(c.Special) + " a special character (" + specialChars + ")",
	}
}

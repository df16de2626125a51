package pwgen

import "strconv"

// Options is the policy request sent to the generator.
type Options struct {
	Count          int
	Length         int
	Capitals       bool
	Digits         bool
	Symbols        bool
	AvoidAmbiguous bool
	// NoRepeatingAdjacent asks for no two identical consecutive characters.
	// pwgen has no switch for it, so Args does not emit a flag.
	NoRepeatingAdjacent bool
	// Secure selects fully random rather than pronounceable passwords.
	Secure bool
}

// DefaultOptions is the fixed request used by the gen command.
func DefaultOptions() Options {
	return Options{
		Count:               1,
		Length:              34,
		Capitals:            true,
		Digits:              true,
		Symbols:             true,
		AvoidAmbiguous:      true,
		NoRepeatingAdjacent: true,
		Secure:              true,
	}
}

// Args renders o as pwgen command line arguments.
func (o Options) Args() []string {
	var args []string
	if o.Capitals {
		args = append(args, "-c")
	}
	if o.Digits {
		args = append(args, "-n")
	}
	if o.Symbols {
		args = append(args, "-y")
	}
	if o.Secure {
		args = append(args, "-s")
	}
	if o.AvoidAmbiguous {
		args = append(args, "-B")
	}
	return append(args, "-1", strconv.Itoa(o.Length), strconv.Itoa(o.Count))
}

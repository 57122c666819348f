package pipeline

import "fmt"

// Invocation is a parsed positional command line.
type Invocation struct {
	Plan       Plan
	OutputName string // without extension
	InputPath  string
}

// ParseArgs parses the positional syntax
//
//	[-n] [-b N] [-p] [-s] [-g] [-c] [-r WxH] -oa|-ob outputname input.ppm
//
// Options are kept in the order given. Exactly one of -oa or -ob must
// appear; wherever it sits, the image is written after every option ran.
func ParseArgs(args []string) (*Invocation, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%w: expected [options] -oa|-ob outputname inputname", ErrInvalidOperation)
	}
	inv := &Invocation{
		OutputName: args[len(args)-2],
		InputPath:  args[len(args)-1],
	}

	opts := args[:len(args)-2]
	haveOutput := false
	for i := 0; i < len(opts); i++ {
		switch a := opts[i]; a {
		case "-oa", "-ob":
			if haveOutput {
				return nil, fmt.Errorf("%w: output requested more than once", ErrInvalidOperation)
			}
			haveOutput = true
			inv.Plan.Output = Output{Binary: a == "-ob"}
		case "-n":
			inv.Plan.Ops = append(inv.Plan.Ops, Op{Kind: OpNegate})
		case "-p":
			inv.Plan.Ops = append(inv.Plan.Ops, Op{Kind: OpSharpen})
		case "-s":
			inv.Plan.Ops = append(inv.Plan.Ops, Op{Kind: OpSmooth})
		case "-g":
			inv.Plan.Ops = append(inv.Plan.Ops, Op{Kind: OpGrayscale})
		case "-c":
			inv.Plan.Ops = append(inv.Plan.Ops, Op{Kind: OpContrast})
		case "-b", "-r":
			if i+1 >= len(opts) {
				return nil, fmt.Errorf("%w: %s needs a value", ErrInvalidOperation, a)
			}
			i++
			op, err := parseValued(a, opts[i])
			if err != nil {
				return nil, err
			}
			inv.Plan.Ops = append(inv.Plan.Ops, op)
		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidOperation, a)
		}
	}
	if !haveOutput {
		return nil, fmt.Errorf("%w: missing -oa or -ob", ErrInvalidOperation)
	}
	return inv, nil
}

func parseValued(flag, value string) (Op, error) {
	if flag == "-r" {
		return parseResize(value)
	}
	delta, err := parseDelta(value)
	if err != nil {
		return Op{}, err
	}
	return Op{Kind: OpBrighten, Delta: delta}, nil
}

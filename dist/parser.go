package dist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies which distribution variant a parsed type-code string
// names.
type Kind int

const (
	KindDeterministic Kind = iota
	KindExponential
	KindErlang
	KindHypoexponential
	KindHyperexponential
)

// Args carries the variant-specific construction parameters recovered by
// Parse, so callers can defer Instantiate to a later point. The RNG is not
// part of construction; it is passed explicitly to each Sample call.
type Args struct {
	K            int       // Erlang
	Weights      []float64 // Hypoexponential
	LambdWeights []float64 // Hyperexponential WL
	ProbWeights  []float64 // Hyperexponential WP
}

var hyperPattern = regexp.MustCompile(`^\(\s*WL\s*=\s*\[(.*)\]\s*,\s*WP\s*=\s*\[(.*)\]\s*\)$`)

// Parse recognizes the type-code grammar of spec.md §4.1/§6:
//
//	"D"                                   Deterministic
//	"M"                                   Exponential
//	"E<k>"      k >= 1 integer            Erlang
//	"Hypo(w1,w2,...,wk)"                  Hypoexponential
//	"Hyper(WL=[l1,...], WP=[p1,...])"     Hyperexponential
//
// Whitespace is tolerated around "=" and inside brackets. Malformed input
// returns ErrMalformedType.
func Parse(typeCode string) (Kind, Args, error) {
	switch {
	case typeCode == "D":
		return KindDeterministic, Args{}, nil

	case typeCode == "M":
		return KindExponential, Args{}, nil

	case strings.HasPrefix(typeCode, "E"):
		k, err := strconv.Atoi(typeCode[1:])
		if err != nil || k < 1 {
			return 0, Args{}, fmt.Errorf("%w: type == %q", ErrMalformedType, typeCode)
		}
		return KindErlang, Args{K: k}, nil

	case strings.HasPrefix(typeCode, "Hypo"):
		body := typeCode[len("Hypo"):]
		if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
			return 0, Args{}, fmt.Errorf("%w: type == %q", ErrMalformedType, typeCode)
		}
		weights, err := parseFloatList(body[1 : len(body)-1])
		if err != nil {
			return 0, Args{}, fmt.Errorf("%w: type == %q", ErrMalformedType, typeCode)
		}
		return KindHypoexponential, Args{Weights: weights}, nil

	case strings.HasPrefix(typeCode, "Hyper"):
		body := typeCode[len("Hyper"):]
		match := hyperPattern.FindStringSubmatch(body)
		if match == nil {
			return 0, Args{}, fmt.Errorf("%w: type == %q", ErrMalformedType, typeCode)
		}
		lambdWeights, err1 := parseFloatList(match[1])
		probWeights, err2 := parseFloatList(match[2])
		if err1 != nil || err2 != nil {
			return 0, Args{}, fmt.Errorf("%w: type == %q", ErrMalformedType, typeCode)
		}
		return KindHyperexponential, Args{LambdWeights: lambdWeights, ProbWeights: probWeights}, nil

	default:
		return 0, Args{}, fmt.Errorf("%w: type == %q", ErrMalformedType, typeCode)
	}
}

func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Instantiate builds the concrete Distribution named by kind and args, at
// the given rate lambd.
func Instantiate(kind Kind, args Args, lambd float64) (Distribution, error) {
	switch kind {
	case KindDeterministic:
		return NewDeterministic(lambd), nil
	case KindExponential:
		return NewExponential(lambd), nil
	case KindErlang:
		return NewErlang(lambd, args.K)
	case KindHypoexponential:
		return NewHypoexponential(lambd, args.Weights)
	case KindHyperexponential:
		return NewHyperexponential(lambd, args.LambdWeights, args.ProbWeights)
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidParameter, kind)
	}
}

// ParseAndInstantiate is a convenience wrapper combining Parse and
// Instantiate, for callers that don't need the intermediate Kind/Args pair.
func ParseAndInstantiate(typeCode string, lambd float64) (Distribution, error) {
	kind, args, err := Parse(typeCode)
	if err != nil {
		return nil, err
	}
	return Instantiate(kind, args, lambd)
}

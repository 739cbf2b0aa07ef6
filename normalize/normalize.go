// Package normalize implements the finder's pre-tokenization pipeline: a
// composable sequence of pure (normalize, denormalize) string transforms
// applied before a tokenizer ever sees the text.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/fulmenhq/levfind/errors"
)

// Normalizer is one stage of the pipeline: a forward transform and its
// (possibly lossy) inverse.
type Normalizer interface {
	Normalize(s string) string
	Denormalize(s string) string
	String() string
}

// Pipeline applies a sequence of Normalizers left-to-right on Normalize
// and in the same order on Denormalize (stages are not required to be
// order-reversible; several declare Denormalize as identity or as a
// lossy, non-inverse transform).
type Pipeline struct {
	stages []Normalizer
}

// NewPipeline validates and wraps a fixed sequence of normalizers. A nil
// stage violates the normalizer contract and is rejected at construction
// time, per the InvalidNormalizer error kind.
func NewPipeline(stages ...Normalizer) (*Pipeline, error) {
	for i, s := range stages {
		if s == nil {
			return nil, errors.NewInvalidNormalizerError("normalizer pipeline stage is nil")
		}
		_ = i
	}
	return &Pipeline{stages: stages}, nil
}

// Options selects which built-in normalizers a pipeline enables, plus any
// custom stages appended after them.
type Options struct {
	Unicode   bool
	Lowercase bool
	Number    bool
	Customs   []Normalizer
}

// BuildPipeline constructs a Pipeline from Options, in the fixed order
// Unicode, Lowercase, Number, then any custom stages.
func BuildPipeline(opts Options) (*Pipeline, error) {
	var stages []Normalizer
	if opts.Unicode {
		stages = append(stages, Unicode{})
	}
	if opts.Lowercase {
		stages = append(stages, Lowercase{})
	}
	if opts.Number {
		stages = append(stages, Number{})
	}
	stages = append(stages, opts.Customs...)
	return NewPipeline(stages...)
}

// Normalize runs the pipeline forward.
func (p *Pipeline) Normalize(s string) string {
	for _, stage := range p.stages {
		s = stage.Normalize(s)
	}
	return s
}

// Denormalize runs the pipeline's inverse, in the same stage order the
// forward pass used (matching the reference implementation this pipeline
// is grounded on, which applies denormalize stages in forward order too —
// most stages are lossy enough that reversing the order would not help).
func (p *Pipeline) Denormalize(s string) string {
	for _, stage := range p.stages {
		s = stage.Denormalize(s)
	}
	return s
}

func (p *Pipeline) String() string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.String()
	}
	return strings.Join(names, " -> ")
}

// Unicode normalizes to NFKD and denormalizes back to NFKC.
type Unicode struct{}

func (Unicode) Normalize(s string) string   { return norm.NFKD.String(s) }
func (Unicode) Denormalize(s string) string { return norm.NFKC.String(s) }
func (Unicode) String() string              { return "Unicode(NFKD, NFKC)" }

// Lowercase folds to lowercase; denormalization is the identity since
// case is irrecoverably lost.
type Lowercase struct{}

func (Lowercase) Normalize(s string) string   { return strings.ToLower(s) }
func (Lowercase) Denormalize(s string) string { return s }
func (Lowercase) String() string              { return "Lowercase(Abc -> abc)" }

var digitRun = regexp.MustCompile(`[0-9]+`)

// Number collapses every maximal run of decimal digits to the literal
// "1". Denormalize replaces each "1" with the literal "[NUM]" — this is
// the documented asymmetric quirk carried over from the source behavior:
// denormalize is not the inverse of normalize (a literal "1" that was
// never a digit run still becomes "[NUM]"), and it is lossy whenever the
// normalized string happens to contain a genuine standalone "1".
type Number struct{}

func (Number) Normalize(s string) string   { return digitRun.ReplaceAllString(s, "1") }
func (Number) Denormalize(s string) string { return strings.ReplaceAll(s, "1", "[NUM]") }
func (Number) String() string              { return "Number(123 -> 1, denormalize 1 -> [NUM])" }

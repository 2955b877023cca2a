package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/anyonfuse/basis"
	"github.com/katalvlaran/anyonfuse/model"
	"github.com/katalvlaran/anyonfuse/state"
)

var (
	// ErrUnknownFormat indicates a file extension or format name that is neither TOML nor YAML.
	ErrUnknownFormat = errors.New("scenario: unknown format")

	// ErrInvalid indicates a scenario that fails field validation.
	ErrInvalid = errors.New("scenario: invalid")

	// ErrMissingModel indicates a scenario without a model when one is needed.
	ErrMissingModel = errors.New("scenario: model not set")
)

// Format names a scenario encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFor picks the format from a file extension (.toml, .yaml, .yml).
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Anyon is one anyon entry of a scenario file.
type Anyon struct {
	Name     string     `toml:"name" yaml:"name" validate:"required"`
	Charge   string     `toml:"charge" yaml:"charge" validate:"required"`
	Position [2]float64 `toml:"position" yaml:"position,flow"`
}

// Operation is one fusion entry of a scenario file.
type Operation struct {
	Time uint32 `toml:"time" yaml:"time"`
	Pair [2]int `toml:"pair" yaml:"pair,flow"`
}

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Model      string      `toml:"model" yaml:"model" validate:"omitempty,category"`
	Anyons     []Anyon     `toml:"anyons" yaml:"anyons" validate:"dive"`
	Operations []Operation `toml:"operations" yaml:"operations"`
}

// Rejection is an operation Build could not apply, with the ledger's reason.
type Rejection struct {
	Index     int
	Operation state.Operation
	Reason    error
}

func (r Rejection) String() string {
	return fmt.Sprintf("operation %d (%s): %v", r.Index, r.Operation, r.Reason)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		_, err := model.ParseCategory(fl.Field().String())
		return err == nil
	})

	return v
}

// mustRegister installs a custom tag and panics if validator refuses it.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("scenario: register %q validation: %v", tag, err))
	}
}

// Load reads and decodes the scenario at path; the format follows the extension.
func Load(path string) (*Scenario, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}
	sc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Decode parses data in the given format and validates the fields.
func Decode(data []byte, format Format) (*Scenario, error) {
	var sc Scenario
	switch format {
	case TOML:
		if err := toml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("scenario: parsing TOML: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("scenario: parsing YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Validate checks required fields and the model name.
func (sc *Scenario) Validate() error {
	if err := validate.Struct(sc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Encode renders the scenario in the given format.
func (sc *Scenario) Encode(format Format) ([]byte, error) {
	switch format {
	case TOML:
		return toml.Marshal(sc)
	case YAML:
		return yaml.Marshal(sc)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Category parses the scenario's model.
func (sc *Scenario) Category() (model.Category, error) {
	if sc.Model == "" {
		return 0, ErrMissingModel
	}

	return model.ParseCategory(sc.Model)
}

// Build replays the scenario into a new ledger created with opts.
//
// Returns the ledger and the operations it rejected as illegal. Unknown
// charges, malformed pairs and out-of-range indices abort with an error.
func (sc *Scenario) Build(opts ...state.Option) (*state.State, []Rejection, error) {
	cat, err := sc.Category()
	if err != nil {
		return nil, nil, err
	}

	st := state.New(opts...)
	for i, a := range sc.Anyons {
		charge, err := model.ParseCharge(cat, a.Charge)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: anyon %d: %w", i, err)
		}
		anyon, err := model.NewAnyon(a.Name, charge, model.Position{X: a.Position[0], Y: a.Position[1]})
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: anyon %d: %w", i, err)
		}
		if err := st.AddAnyon(anyon); err != nil {
			return nil, nil, fmt.Errorf("scenario: anyon %d: %w", i, err)
		}
	}

	var rejected []Rejection
	for i, op := range sc.Operations {
		pair, err := state.NewFusionPair(op.Pair[0], op.Pair[1])
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: operation %d: %w", i, err)
		}
		reason := st.Check(op.Time, pair)
		ok, err := st.AddOperation(op.Time, pair)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: operation %d: %w", i, err)
		}
		if !ok {
			rejected = append(rejected, Rejection{
				Index:     i,
				Operation: state.Operation{Time: op.Time, Pair: pair},
				Reason:    reason,
			})
		}
	}

	return st, rejected, nil
}

// Basis returns the operations, in file order, as an unvalidated basis.
func (sc *Scenario) Basis() (basis.Basis, error) {
	ops := make([]state.Operation, len(sc.Operations))
	for i, op := range sc.Operations {
		pair, err := state.NewFusionPair(op.Pair[0], op.Pair[1])
		if err != nil {
			return basis.Basis{}, fmt.Errorf("scenario: operation %d: %w", i, err)
		}
		ops[i] = state.Operation{Time: op.Time, Pair: pair}
	}

	return basis.New(ops), nil
}

// FromState captures a ledger as a scenario.
func FromState(st *state.State) *Scenario {
	sc := &Scenario{Anyons: anyonEntries(st.Anyons()), Operations: operationEntries(st.Operations())}
	if cat, ok := st.Category(); ok {
		sc.Model = strings.ToLower(cat.String())
	}

	return sc
}

// FromBasis captures a basis over the given anyons as a scenario.
func FromBasis(cat model.Category, anyons []model.Anyon, b basis.Basis) *Scenario {
	return &Scenario{
		Model:      strings.ToLower(cat.String()),
		Anyons:     anyonEntries(anyons),
		Operations: operationEntries(b.Operations()),
	}
}

func anyonEntries(anyons []model.Anyon) []Anyon {
	out := make([]Anyon, len(anyons))
	for i, a := range anyons {
		p := a.Position()
		out[i] = Anyon{
			Name:     a.Name(),
			Charge:   strings.ToLower(a.Charge().String()),
			Position: [2]float64{p.X, p.Y},
		}
	}

	return out
}

func operationEntries(ops []state.Operation) []Operation {
	out := make([]Operation, len(ops))
	for i, op := range ops {
		out[i] = Operation{Time: op.Time, Pair: [2]int{op.Pair.Anyon1(), op.Pair.Anyon2()}}
	}

	return out
}

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/potlab/internal/models"
	"github.com/san-kum/potlab/internal/pot"
)

var (
	ErrEmptyNode   = errors.New("config: empty potential node")
	ErrUnknownForm = errors.New("config: unknown potential form")
	ErrUnknownOp   = errors.New("config: unknown composition op")
)

// Node is one node of a potential expression tree. Composite nodes set Op,
// Left and Right; leaf nodes set Form plus the parameters of that form.
// Parameters left at zero keep the form's defaults.
type Node struct {
	Op    string `yaml:"op,omitempty"` // "add" | "mul"
	Left  *Node  `yaml:"left,omitempty"`
	Right *Node  `yaml:"right,omitempty"`

	Form      string  `yaml:"form,omitempty"`
	Epsilon   float64 `yaml:"epsilon,omitempty"`
	Sigma     float64 `yaml:"sigma,omitempty"`
	Depth     float64 `yaml:"depth,omitempty"`
	Width     float64 `yaml:"width,omitempty"`
	K         float64 `yaml:"k,omitempty"`
	R0        float64 `yaml:"r0,omitempty"`
	On        float64 `yaml:"on,omitempty"`
	Off       float64 `yaml:"off,omitempty"`
	Prefactor float64 `yaml:"prefactor,omitempty"`
	Decay     float64 `yaml:"decay,omitempty"`
	Screening float64 `yaml:"screening,omitempty"`
	Cutoff    float64 `yaml:"cutoff,omitempty"`
}

type ScanConfig struct {
	Rmin   float64 `yaml:"rmin"`
	Rmax   float64 `yaml:"rmax"`
	Points int     `yaml:"points"`
}

type Config struct {
	Potential *Node      `yaml:"potential"`
	Scan      ScanConfig `yaml:"scan"`
	Mode      string     `yaml:"mode"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: &Node{Form: "lj"},
		Scan:      ScanConfig{Rmin: 0.8, Rmax: 3.0, Points: 200},
		Mode:      "value",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build turns the expression tree into a potential. Composite nodes become
// pot.Add/pot.Mul exactly as written; no simplification happens here.
func (n *Node) Build() (pot.Potential, error) {
	if n == nil {
		return nil, ErrEmptyNode
	}
	if n.Op != "" {
		left, err := n.Left.Build()
		if err != nil {
			return nil, err
		}
		right, err := n.Right.Build()
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case "add", "sum":
			return pot.Add(left, right), nil
		case "mul", "product":
			return pot.Mul(left, right), nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOp, n.Op)
		}
	}
	return n.buildLeaf()
}

func (n *Node) buildLeaf() (pot.Potential, error) {
	switch n.Form {
	case "lj", "lennard_jones":
		l := models.NewLennardJones()
		setIf(&l.Epsilon, n.Epsilon)
		setIf(&l.Sigma, n.Sigma)
		setIf(&l.Rc, n.Cutoff)
		return l, nil
	case "morse":
		m := models.NewMorse()
		setIf(&m.Depth, n.Depth)
		setIf(&m.Width, n.Width)
		setIf(&m.R0, n.R0)
		setIf(&m.Rc, n.Cutoff)
		return m, nil
	case "harmonic":
		h := models.NewHarmonic()
		setIf(&h.K, n.K)
		setIf(&h.R0, n.R0)
		setIf(&h.Rc, n.Cutoff)
		return h, nil
	case "taper":
		t := models.NewCosineTaper()
		setIf(&t.On, n.On)
		setIf(&t.Off, n.Off)
		return t, nil
	case "bondorder":
		b := models.NewBondOrder()
		setIf(&b.Prefactor, n.Prefactor)
		setIf(&b.Decay, n.Decay)
		setIf(&b.Screening, n.Screening)
		setIf(&b.Rc, n.Cutoff)
		return b, nil
	case "":
		return nil, ErrEmptyNode
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, n.Form)
	}
}

func setIf(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

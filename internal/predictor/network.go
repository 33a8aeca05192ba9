package predictor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openfluke/loom/nn"

	"github.com/cubeworks/cubeview"
)

// Predictor selects the next move for a cube state tensor.
type Predictor interface {
	Predict(state []float32) (cubeview.Move, error)
}

// layerSpec is one dense layer of the model artifact.
type layerSpec struct {
	In         int       `json:"in"`
	Out        int       `json:"out"`
	Activation string    `json:"activation"`
	Kernel     []float32 `json:"kernel"`
	Bias       []float32 `json:"bias"`
}

// artifact is the on-disk model format: a plain feed-forward stack whose
// final layer scores the 18 canonical move tokens.
type artifact struct {
	Version int         `json:"version"`
	Input   int         `json:"input"`
	Output  int         `json:"output"`
	Layers  []layerSpec `json:"layers"`
}

// Network is a pretrained feed-forward move predictor.
type Network struct {
	net *nn.Network
}

var activations = map[string]nn.ActivationType{
	"relu":     nn.ActivationLeakyReLU,
	"tanh":     nn.ActivationTanh,
	"sigmoid":  nn.ActivationSigmoid,
	"softplus": nn.ActivationSoftplus,
}

// LoadNetwork reads a model artifact from disk and builds the inference
// network. Any failure here is fatal for solving: there is no fallback
// predictor.
func LoadNetwork(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	return buildNetwork(&art)
}

func buildNetwork(art *artifact) (*Network, error) {
	if art.Input != StateSize {
		return nil, fmt.Errorf("model input size %d, want %d", art.Input, StateSize)
	}
	if art.Output != cubeview.VocabularySize {
		return nil, fmt.Errorf("model output size %d, want %d", art.Output, cubeview.VocabularySize)
	}
	if len(art.Layers) == 0 {
		return nil, fmt.Errorf("model has no layers")
	}

	net := nn.NewNetwork(art.Input, 1, 1, len(art.Layers))
	net.BatchSize = 1

	prev := art.Input
	for i, spec := range art.Layers {
		if spec.In != prev {
			return nil, fmt.Errorf("layer %d input size %d does not chain from %d", i, spec.In, prev)
		}
		act, ok := activations[spec.Activation]
		if !ok {
			return nil, fmt.Errorf("layer %d has unknown activation %q", i, spec.Activation)
		}

		cfg := nn.InitDenseLayer(spec.In, spec.Out, act)
		if len(spec.Kernel) != len(cfg.Kernel) {
			return nil, fmt.Errorf("layer %d kernel length %d, want %d", i, len(spec.Kernel), len(cfg.Kernel))
		}
		if len(spec.Bias) != len(cfg.Bias) {
			return nil, fmt.Errorf("layer %d bias length %d, want %d", i, len(spec.Bias), len(cfg.Bias))
		}
		copy(cfg.Kernel, spec.Kernel)
		copy(cfg.Bias, spec.Bias)

		net.SetLayer(0, 0, i, cfg)
		prev = spec.Out
	}

	if prev != art.Output {
		return nil, fmt.Errorf("final layer output size %d, want %d", prev, art.Output)
	}

	return &Network{net: net}, nil
}

// Predict runs one forward pass and returns the highest-scoring move
// token.
func (n *Network) Predict(state []float32) (cubeview.Move, error) {
	if len(state) != StateSize {
		return cubeview.Move{}, fmt.Errorf("predictor: state length %d, want %d", len(state), StateSize)
	}

	scores, _ := n.net.ForwardCPU(state)
	if len(scores) < cubeview.VocabularySize {
		return cubeview.Move{}, fmt.Errorf("predictor: %d scores, want %d", len(scores), cubeview.VocabularySize)
	}

	best := 0
	for i := 1; i < cubeview.VocabularySize; i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return cubeview.MoveFromToken(uint8(best)), nil
}

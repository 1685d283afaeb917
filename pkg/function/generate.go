package function

import (
	"bytes"
	"fmt"
	"text/template"

	log "github.com/sirupsen/logrus"

	"github.com/vhive-serverless/orcbench/pkg/common"
	"github.com/vhive-serverless/orcbench/pkg/generator"
	"github.com/vhive-serverless/orcbench/pkg/model"
)

// Specification what a generated stub has to burn when invoked.
type Specification struct {
	Name string
	// seconds of busy CPU
	Runtime float64
	// MiB touched during the invocation
	Memory float64
}

type Generator interface {
	Generate(spec Specification) (string, error)
}

type templateGenerator struct {
	tmpl *template.Template
}

func (g templateGenerator) Generate(spec Specification) (string, error) {
	var out bytes.Buffer
	if err := g.tmpl.Execute(&out, templateArgs(spec)); err != nil {
		return "", err
	}

	return out.String(), nil
}

type stubArgs struct {
	Name      string
	Runtime   string
	MemoryMiB int
}

func templateArgs(spec Specification) stubArgs {
	memory := int(spec.Memory)
	memory = common.MinOf(common.MaxMemQuotaMib, common.MaxOf(common.MinMemQuotaMib, memory))

	return stubArgs{
		Name:      spec.Name,
		Runtime:   fmt.Sprintf("%f", spec.Runtime),
		MemoryMiB: memory,
	}
}

var generators = map[Kind]Generator{
	Python: templateGenerator{tmpl: template.Must(template.New("python").Parse(pythonTemplate))},
	Go:     templateGenerator{tmpl: template.Must(template.New("go").Parse(goTemplate))},
}

func Generate(kind Kind, spec Specification) (string, error) {
	g, ok := generators[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	return g.Generate(spec)
}

// Create samples a fresh runtime and memory footprint from the model and
// renders a stub for them.
func Create(m *model.WorkloadModel, kind Kind) (string, error) {
	spec := Specification{
		Name:    m.Name(),
		Runtime: m.SampleCPU(1)[0],
		Memory:  m.SampleMemory(1)[0],
	}

	return Generate(kind, spec)
}

// GenerateForJob renders one stub per identity of the job, using the
// runtime and memory the job fixed for that identity.
func GenerateForJob(job *generator.Job, kind Kind) (map[string]string, error) {
	result := make(map[string]string, job.FunctionCount())

	for _, id := range job.Identities() {
		program, err := Generate(kind, Specification{
			Name:    id,
			Runtime: job.Runtime(id),
			Memory:  job.Memory(id),
		})
		if err != nil {
			return nil, err
		}

		result[id] = program
	}

	log.Debugf("Generated %d %s stubs for model %s", len(result), kind, job.Model().Name())

	return result, nil
}

package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type ChannelParameters struct {
	Title string  `yaml:"Title"`
	Eta   float64 `yaml:"Eta"`   // dynamic viscosity [Pa s]
	DPdx  float64 `yaml:"DPdx"`  // pressure gradient [Pa/m]
	Depth float64 `yaml:"Depth"` // channel depth [m]
	Ny    int     `yaml:"Ny"`    // number of grid nodes
	// Key is the boundary name, Top or Bottom
	BCs map[string]BCSpec `yaml:"BCs"`
}

type BCSpec struct {
	Type  string  `yaml:"Type"`  // velocity or freeslip
	Value float64 `yaml:"Value"` // boundary velocity [m/s], velocity type only
}

func (cp *ChannelParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *ChannelParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%8.3g\t\t= Eta\n", cp.Eta)
	fmt.Printf("%8.5g\t\t= DPdx\n", cp.DPdx)
	fmt.Printf("%8.5g\t\t= Depth\n", cp.Depth)
	fmt.Printf("[%d]\t\t\t= Ny\n", cp.Ny)
	keys := make([]string, len(cp.BCs))
	i := 0
	for k := range cp.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, cp.BCs[key])
	}
}

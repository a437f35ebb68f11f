package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/LiviuCP/Matrix-sub005/matrix"
)

// Profile holds the defaults matrixctl applies when a flag is not given.
// It is read from a TOML file passed with --config:
//
//	rows    = 4
//	cols    = 5
//	order   = "d"
//	reverse = false
//	slack   = 50
type Profile struct {
	Rows    int    `toml:"rows"`
	Cols    int    `toml:"cols"`
	Order   string `toml:"order"`
	Reverse bool   `toml:"reverse"`
	Slack   int    `toml:"slack"`
}

// DefaultProfile is used when no --config file is given; keys missing from
// a file keep these values.
func DefaultProfile() Profile {
	return Profile{
		Rows:  3,
		Cols:  4,
		Order: orderZ,
		Slack: matrix.DefaultGrowthSlackPercent,
	}
}

// loadProfile decodes path over DefaultProfile. An empty path yields the defaults.
func loadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Profile{}, fmt.Errorf("load profile %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := p.validate(); err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
	}

	return p, nil
}

func (p Profile) validate() error {
	if p.Rows <= 0 || p.Cols <= 0 || p.Rows > matrix.MaxDimension || p.Cols > matrix.MaxDimension {
		return fmt.Errorf("shape %dx%d outside [1, %d]", p.Rows, p.Cols, matrix.MaxDimension)
	}
	if !slices.Contains(orders, p.Order) {
		return fmt.Errorf("unknown order %q (want one of %s)", p.Order, strings.Join(orders, ", "))
	}
	if p.Slack < 0 || p.Slack > 100 {
		return fmt.Errorf("slack %d outside [0, 100]", p.Slack)
	}

	return nil
}

// options turns the profile into matrix construction options.
func (p Profile) options(extra ...matrix.Option) []matrix.Option {
	return append([]matrix.Option{matrix.WithGrowthSlack(p.Slack)}, extra...)
}

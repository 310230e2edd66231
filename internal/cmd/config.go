package cmd

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/govalues/evmmath"
)

// Config holds the settings shared by all the commands. Values come from
// flags, EVMMATH_* environment variables and the config file, in that order
// of precedence.
type Config struct {
	Unit     string `mapstructure:"unit"`
	Rounding string `mapstructure:"rounding"`
	Digits   int    `mapstructure:"digits"`
	Raw      bool   `mapstructure:"raw"`
	Debug    bool   `mapstructure:"debug"`
}

// newConfig decodes the current settings of v.
func newConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	return &c, nil
}

// Scale returns the scale of the configured unit with the configured
// rounding mode.
func (c *Config) Scale() (evmmath.Scale, error) {
	s, err := ParseUnit(c.Unit)
	if err != nil {
		return evmmath.Scale{}, err
	}
	mode, err := evmmath.ParseRoundingMode(c.Rounding)
	if err != nil {
		return evmmath.Scale{}, errors.Wrap(err, "invalid --rounding")
	}
	return s.WithMode(mode), nil
}

// ParseUnit converts a unit name, such as "wad", or a number of decimals,
// such as "6", to a scale.
func ParseUnit(unit string) (evmmath.Scale, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "percent", "bps":
		return evmmath.PercentScale, nil
	case "wad":
		return evmmath.WadScale, nil
	case "ray":
		return evmmath.RayScale, nil
	case "unscaled", "int":
		return evmmath.Unscaled, nil
	}
	prec, err := strconv.Atoi(unit)
	if err != nil {
		return evmmath.Scale{}, errors.Errorf("unknown unit %q", unit)
	}
	s, err := evmmath.NewScale(prec)
	if err != nil {
		return evmmath.Scale{}, errors.Wrapf(err, "unit %q", unit)
	}
	return s, nil
}

// parseOperand reads a decimal operand at the precision of s, or a scaled
// integer when raw is set.
func (c *Config) parseOperand(s evmmath.Scale, arg string) (*big.Int, error) {
	if c.Raw {
		z, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return nil, errors.Errorf("invalid integer operand %q", arg)
		}
		return z, nil
	}
	z, err := s.Parse(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid operand %q", arg)
	}
	return z, nil
}

// parseOperands is like parseOperand for every argument.
func (c *Config) parseOperands(s evmmath.Scale, args []string) ([]*big.Int, error) {
	values := make([]*big.Int, len(args))
	for i, arg := range args {
		z, err := c.parseOperand(s, arg)
		if err != nil {
			return nil, err
		}
		values[i] = z
	}
	return values, nil
}

// format prints a result at the precision of s, or as a scaled integer
// when raw is set.
func (c *Config) format(s evmmath.Scale, z *big.Int) string {
	if c.Raw {
		return z.String()
	}
	return s.Format(z, c.Digits)
}

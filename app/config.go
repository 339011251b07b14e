package app

// Config is the program configuration. The host build loads it from the
// environment (see LoadConfig) and lets flags override it.
type Config struct {
	Headless bool   `env:"SPARKCALC_HEADLESS" envDefault:"false"`
	Hz       int    `env:"SPARKCALC_HZ"       envDefault:"60"`
	Ticks    uint64 `env:"SPARKCALC_TICKS"    envDefault:"0"`
	Keys     string `env:"SPARKCALC_KEYS"`
	Readout  bool   `env:"SPARKCALC_READOUT"  envDefault:"false"`
	Scale    int    `env:"SPARKCALC_SCALE"    envDefault:"2"`
}

package dayspark

import (
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _dsconfig{}
)

// _dsconfig is a "hidden" struct, just use `dsConfig`. Everything in it is a
// tunable with a sane default; a conf.toml is never required.
type _dsconfig struct {
	scanStep        time.Duration // altitude scan cadence (Moon rise/set)
	aspectStep      time.Duration // aspect sub-sampling cadence for Moon pairs
	elongationLimit float64       // degrees; below it a planet drowns in glare
	twilightMargin  time.Duration // "(difficult)" qualifier window
}

// dsConfig returns the engine configuration, loading it on first use.
// The directory named by DAYSPARK_CONF may hold a conf.toml overriding the
// defaults; absent both, the defaults apply. Queries run in parallel with no
// coordination, so the one-time load is the only synchronized spot.
func dsConfig() _dsconfig {
	cfgOnce.Do(loadConfig)
	return config
}

func loadConfig() {
	config = _dsconfig{
		scanStep:        10 * time.Minute,
		aspectStep:      time.Hour,
		elongationLimit: 10,
		twilightMargin:  90 * time.Minute,
	}
	if confPath := os.Getenv("DAYSPARK_CONF"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err == nil {
			if v := viper.GetDuration("scan.altitude_step"); v > 0 {
				config.scanStep = v
			}
			if v := viper.GetDuration("scan.aspect_step"); v > 0 {
				config.aspectStep = v
			}
			if v := viper.GetFloat64("visibility.elongation_limit"); v > 0 {
				config.elongationLimit = v
			}
			if v := viper.GetDuration("visibility.twilight_margin"); v > 0 {
				config.twilightMargin = v
			}
		}
	}
}

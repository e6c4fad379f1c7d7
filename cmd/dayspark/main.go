package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dayspark "github.com/thehandsomezebra/DaySpark"
)

var rootCmd = &cobra.Command{
	Use:   "dayspark",
	Short: "Daily astronomical almanac",
	Long:  "DaySpark computes sun and moon times, lunar phase, planet visibility and celestial events for a date and location.",
	RunE:  run,
}

func init() {
	rootCmd.Flags().String("date", "", "civil date, YYYY-MM-DD (default today)")
	rootCmd.Flags().Float64("lat", 0, "observer latitude in degrees")
	rootCmd.Flags().Float64("lon", 0, "observer longitude in degrees, east positive")
	rootCmd.Flags().Int("offset", 0, "local UTC offset in minutes on the target date")
	rootCmd.Flags().Bool("advanced", false, "include apsis, declination, equator and node events")
	rootCmd.Flags().Bool("astrology", false, "include 60/90/120 degree aspects")
	rootCmd.Flags().Bool("deep", false, "include minor aspects and the extra bodies")

	viper.SetEnvPrefix("DAYSPARK")
	viper.AutomaticEnv()
	for _, flag := range []string{"lat", "lon", "offset"} {
		viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag))
	}
}

func run(cmd *cobra.Command, args []string) error {
	// A .env may hold DAYSPARK_LAT / DAYSPARK_LON / DAYSPARK_OFFSET defaults.
	_ = godotenv.Load()

	date := time.Now()
	if s, _ := cmd.Flags().GetString("date"); s != "" {
		var err error
		if date, err = time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("could not parse date %q: %s", s, err)
		}
	}

	obs := dayspark.Observer{Latitude: viper.GetFloat64("lat"), Longitude: viper.GetFloat64("lon")}
	features := dayspark.Features{}
	features.AdvancedAstronomy, _ = cmd.Flags().GetBool("advanced")
	features.Astrology, _ = cmd.Flags().GetBool("astrology")
	features.DeepAstrology, _ = cmd.Flags().GetBool("deep")

	alm := dayspark.New(obs, viper.GetInt("offset"), features)
	result := alm.Compute(dayspark.CivilDate{Year: date.Year(), Month: date.Month(), Day: date.Day()})
	return result.WriteReport(os.Stdout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

type Config struct {
	HTTPPort      string
	StatsSchedule string
}

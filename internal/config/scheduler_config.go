package config

// SchedulerConfig defines configuration for recurring checks in automated mode
type SchedulerConfig struct {
	Cron     string `json:"cron,omitempty" yaml:"cron,omitempty" validate:"omitempty,cronexpr"`
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty" validate:"omitempty,timezone"`
}

// NewDefaultSchedulerConfig creates default scheduler configuration
func NewDefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Cron: DefaultSchedulerCron,
	}
}

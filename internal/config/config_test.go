package config

import "testing"

func TestAutoMigrateEnabled(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		force bool
		want  bool
	}{
		{"debug mode migrates by default", "debug", false, true},
		{"release mode skips migration", "release", false, false},
		{"release mode with -migrate", "release", true, true},
		{"debug mode with -migrate", "debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server:       ServerConfig{Mode: tt.mode},
				ForceMigrate: tt.force,
			}
			if got := cfg.AutoMigrateEnabled(); got != tt.want {
				t.Errorf("AutoMigrateEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

package config

import "testing"

func BenchmarkValidate(b *testing.B) {
	cfg := NewDefaultConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.PruneSchedule = "0 3 * * *"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Validate(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApplyDefaults(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var cfg Config
		ApplyDefaults(&cfg)
	}
}

package indices

func (s *Scraper) infof(format string, args ...interface{}) {
	if s.EnableLog {
		s.Logger.Infof(format, args...)
	}
}

func (s *Scraper) warnf(format string, args ...interface{}) {
	if s.EnableLog {
		s.Logger.Warnf(format, args...)
	}
}

func (s *Scraper) errorf(format string, args ...interface{}) {
	if s.EnableLog {
		s.Logger.Errorf(format, args...)
	}
}

// verbosef logs at info level, but only when verbose logging is enabled.
func (s *Scraper) verbosef(format string, args ...interface{}) {
	if s.EnableLog && s.EnableVerboseLog {
		s.Logger.Infof(format, args...)
	}
}

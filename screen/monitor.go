package screen

func primaryOf(monitors []Monitor) (Monitor, error) {
	for _, m := range monitors {
		if m.Primary {
			return m, nil
		}
	}
	return Monitor{}, ErrNoPrimary
}

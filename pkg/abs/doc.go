// Package abs provides an embeddable anti-lock braking controller for
// two-wheel vehicles.
//
// Example usage:
//
//	cfg := abs.DefaultConfig()
//	cfg.Duration = 5 * time.Second
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	a, err := abs.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := a.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Stop(context.Background())
//
// By default the controller runs against a simulated rig: square-wave wheel
// sensors, a constant lever and a recording actuator. Options swap in real
// inputs and outputs.
package abs

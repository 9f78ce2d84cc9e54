// Package sim provides the simulated rig: deterministic signal generators
// standing in for the wheel sensors, the lever sampler and the periodic tick
// timer, plus a recording actuator. Together they let the control core run,
// and be observed, without any hardware attached.
package sim

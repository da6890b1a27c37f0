package models

// ScanReport is the terminal result of one inactivity scanner run. Partial
// failure is reported, not thrown: per-user and per-vault errors land in
// Errors while the run keeps going, and Success only drops to false when the
// run could not even enumerate users.
type ScanReport struct {
	Success         bool     `json:"success"`
	InactiveUsers   int      `json:"inactiveUsers"`
	VaultsDelivered int      `json:"vaultsDelivered"`
	Errors          []string `json:"errors"`
}

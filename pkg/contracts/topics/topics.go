package topics

const (
	// Stakes
	StakeRecorded = "stake_recorded"
)

package candidate

var (
	SealPII = sealPII
	OpenPII = openPII
)

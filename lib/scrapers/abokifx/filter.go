package abokifx

// header rows carry one of these as a whole token
var noiseSentinels = []string{"NGN", "Buy / Sell"}

func IsNoiseRow(row Row) bool {
	for _, token := range row {
		for _, sentinel := range noiseSentinels {
			if token == sentinel {
				return true
			}
		}
	}
	return false
}

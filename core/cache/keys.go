package cache

import "strconv"

// ReportKey is the key of a store's cached report.
func ReportKey(storeID uint) string {
	return "report:" + strconv.FormatUint(uint64(storeID), 10)
}

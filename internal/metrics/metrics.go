// Package metrics exposes application metrics collectors.
package metrics

const namespace = "hiero_importer"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

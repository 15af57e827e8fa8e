package env

import (
	"os"
)

// PodName is the kubernetes pod running the api, empty outside a cluster
func PodName() string {
	return os.Getenv("PODNAME")
}

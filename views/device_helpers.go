//go:build cgo

package views

import "github.com/notargets/gocca"

// CreateTestDevice creates a Device for testing, preferring parallel backends.
// Returns an error when no OCCA backend is available so tests can skip.
func CreateTestDevice() (*gocca.OCCADevice, error) {
	backends := []string{
		`{"mode": "OpenMP"}`,
		`{"mode": "CUDA", "device_id": 0}`,
		`{"mode": "Serial"}`,
	}

	var err error
	var device *gocca.OCCADevice
	for _, props := range backends {
		device, err = gocca.NewDevice(props)
		if err == nil {
			return device, nil
		}
	}
	return nil, err
}

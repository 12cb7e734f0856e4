package system

import (
	"fmt"
	"net"
	"time"

	"github.com/pkg/errors"
)

func IsPortOpen(host string, port int) bool {
	address := net.JoinHostPort(host, fmt.Sprint(port))
	conn, err := net.DialTimeout("tcp", address, time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// wait until something listens on host:port, e.g. a freshly spawned port-forward
func WaitForPort(host string, port int, trials int, interval time.Duration) error {
	for i := 0; i < trials; i++ {
		if IsPortOpen(host, port) {
			return nil
		}
		time.Sleep(interval)
	}
	return errors.Errorf("nothing listens on %s:%d", host, port)
}

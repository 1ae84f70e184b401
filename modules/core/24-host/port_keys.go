package host

import "fmt"

const KeyPortPrefix = "ports"

// PortPath defines the path under which port bindings are stored
func PortPath(portID string) string {
	return fmt.Sprintf("%s/%s", KeyPortPrefix, portID)
}

// PortKey returns the store key for a particular port binding.
func PortKey(portID string) []byte {
	return []byte(PortPath(portID))
}

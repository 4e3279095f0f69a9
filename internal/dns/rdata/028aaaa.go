package rdata

import (
	"fmt"
	"net"
)

// encodeAAAAData encodes an AAAA record string into its binary
// representation.
func encodeAAAAData(data string) ([]byte, error) {
	// data = "2001:db8::1"
	ip := net.ParseIP(data)
	if ip == nil || ip.To4() != nil || ip.To16() == nil {
		return nil, fmt.Errorf("invalid AAAA record IP: %s", data)
	}
	return ip.To16(), nil
}

// decodeAAAAData decodes AAAA record data into its textual form.
func decodeAAAAData(b []byte) (string, error) {
	if len(b) != net.IPv6len {
		return "", fmt.Errorf("invalid AAAA record length: %d", len(b))
	}
	return net.IP(b).String(), nil
}

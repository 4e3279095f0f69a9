package rdata

import (
	"strconv"
	"strings"
)

// SVCBKey identifies one service-binding parameter (SvcParamKey, RFC 9460).
// The underlying value is the raw 16-bit registry code, so codes outside the
// registry survive a decode/encode round trip unchanged.
type SVCBKey uint16

// Registered SvcParamKey codes.
const (
	SVCBKeyMandatory     SVCBKey = 0
	SVCBKeyAlpn          SVCBKey = 1
	SVCBKeyNoDefaultAlpn SVCBKey = 2
	SVCBKeyPort          SVCBKey = 3
	SVCBKeyIPv4Hint      SVCBKey = 4
	SVCBKeyECHConfig     SVCBKey = 5
	SVCBKeyIPv6Hint      SVCBKey = 6
	SVCBKeyODoHConfig    SVCBKey = 32769
	SVCBKeyReserved      SVCBKey = 65535
)

// svcbKeyNames is the registry's display-name table. Reserved is deliberately
// absent: reserved and unregistered keys present as an empty string.
var svcbKeyNames = map[SVCBKey]string{
	SVCBKeyMandatory:     "mandatory",
	SVCBKeyAlpn:          "alpn",
	SVCBKeyNoDefaultAlpn: "no-default-alpn",
	SVCBKeyPort:          "port",
	SVCBKeyIPv4Hint:      "ipv4hint",
	SVCBKeyECHConfig:     "echconfig",
	SVCBKeyIPv6Hint:      "ipv6hint",
	SVCBKeyODoHConfig:    "odohconfig",
}

var svcbNameKeys = func() map[string]SVCBKey {
	m := make(map[string]SVCBKey, len(svcbKeyNames))
	for k, s := range svcbKeyNames {
		m[s] = k
	}
	return m
}()

// Code returns the numeric registry code.
func (k SVCBKey) Code() uint16 {
	return uint16(k)
}

// Registered classifies the key against the registry: a registered key maps
// to itself, everything else to SVCBKeyReserved. Total over all 16-bit
// values; lookup never fails.
func (k SVCBKey) Registered() SVCBKey {
	if _, ok := svcbKeyNames[k]; ok {
		return k
	}
	return SVCBKeyReserved
}

// String returns the registry's canonical display name, e.g.
// "no-default-alpn". Reserved and unregistered keys return "".
func (k SVCBKey) String() string {
	return svcbKeyNames[k]
}

// SVCBKeyFromName resolves a presentation-form key name. Registered display
// names resolve to their key; "keyNNNNN" resolves to the raw numeric code.
func SVCBKeyFromName(s string) (SVCBKey, bool) {
	if k, ok := svcbNameKeys[s]; ok {
		return k, true
	}
	if rest, ok := strings.CutPrefix(s, "key"); ok {
		code, err := strconv.ParseUint(rest, 10, 16)
		if err == nil {
			return SVCBKey(code), true
		}
	}
	return 0, false
}

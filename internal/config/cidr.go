package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"net"
)

var (
	// ErrInvalidCIDR is returned when a network range is not a valid IPv4 CIDR
	// or the requested subnet count is not positive.
	ErrInvalidCIDR = errors.New("invalid CIDR")

	// ErrCapacityExceeded is returned when a network range is too small to be
	// split into the requested number of subnets.
	ErrCapacityExceeded = errors.New("CIDR capacity exceeded")
)

// Partition splits baseCIDR into count equal-sized, non-overlapping subnets
// ordered by ascending base address.
//
// The new prefix length is prefix+ceil(log2(count)). When count is not a power
// of two the trailing blocks of the range stay unassigned: partitioning
// 10.0.0.0/16 into 3 yields three /18 subnets and leaves 10.0.192.0/18 unused.
// Host bits of baseCIDR are masked, so a count of 1 returns the normalized
// input.
func Partition(baseCIDR string, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: subnet count must be at least 1, got %d", ErrInvalidCIDR, count)
	}

	network, err := parseIPv4Network(baseCIDR)
	if err != nil {
		return nil, err
	}

	maskSize, _ := network.Mask.Size()
	newbits := bits.Len(uint(count - 1))
	if maskSize+newbits > 32 {
		return nil, fmt.Errorf("%w: cannot split %s into %d subnets", ErrCapacityExceeded, baseCIDR, count)
	}

	subnets := make([]string, 0, count)
	for i := range count {
		subnet, err := CIDRSubnet(network.String(), newbits, i)
		if err != nil {
			return nil, err
		}
		subnets = append(subnets, subnet)
	}
	return subnets, nil
}

// CIDRSubnet calculates a subnet address given a network address, a netmask size increase, and a subnet number.
// This mimics the behavior of Terraform's cidrsubnet function.
//
// Parameters:
//   - prefix: The network prefix (e.g., "10.0.0.0/16")
//   - newbits: The number of additional bits to add to the prefix length (e.g., 8 for /24 inside /16)
//   - netnum: The zero-based index of the subnet to calculate
func CIDRSubnet(prefix string, newbits int, netnum int) (string, error) {
	network, err := parseIPv4Network(prefix)
	if err != nil {
		return "", err
	}

	maskSize, totalBits := network.Mask.Size()
	newMaskSize := maskSize + newbits
	if newbits < 0 || newMaskSize > totalBits {
		return "", fmt.Errorf("%w: prefix extension of %d bits is too large for %s", ErrCapacityExceeded, newbits, prefix)
	}

	maxSubnets := uint64(1) << newbits
	if netnum < 0 || uint64(netnum) >= maxSubnets {
		return "", fmt.Errorf("%w: subnet number %d exceeds max subnets %d", ErrCapacityExceeded, netnum, maxSubnets)
	}

	subnetSize := uint64(1) << (totalBits - newMaskSize)
	base := uint64(uint32FromIP(network.IP))
	// #nosec G115 -- offset stays inside the parent network
	newIP := ipFromUint32(uint32(base + uint64(netnum)*subnetSize))

	return fmt.Sprintf("%s/%d", newIP.String(), newMaskSize), nil
}

// parseIPv4Network parses an IPv4 CIDR and returns the masked network.
func parseIPv4Network(cidr string) (*net.IPNet, error) {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCIDR, cidr)
	}
	if network.IP.To4() == nil {
		return nil, fmt.Errorf("%w: only IPv4 networks are supported, got %s", ErrInvalidCIDR, cidr)
	}
	return network, nil
}

// uint32FromIP converts an IPv4 address (4- or 16-byte form) to its integer value.
// Non-IPv4 addresses convert to 0.
func uint32FromIP(ip net.IP) uint32 {
	ip4 := ip.To4()
	if ip4 == nil {
		return 0
	}
	return binary.BigEndian.Uint32(ip4)
}

// ipFromUint32 converts an integer value back to an IPv4 address.
func ipFromUint32(val uint32) net.IP {
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, val)
	return ip
}

package ipmi

import (
	"context"
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	callArgs := m.Called(append([]interface{}{name}, toInterfaces(args)...)...)
	return callArgs.String(0), callArgs.Error(1)
}

func toInterfaces(s []string) []interface{} {
	out := make([]interface{}, 0, len(s))
	for _, v := range s {
		out = append(out, v)
	}

	return out
}

const (
	lanPrintUnset = `Set in Progress         : Set Complete
IP Address Source       : DHCP Address
IP Address              : 0.0.0.0
Subnet Mask             : 0.0.0.0
MAC Address             : 00:00:00:00:00:00
`
	lanPrintSet = `Set in Progress         : Set Complete
IP Address Source       : Static Address
IP Address              : 10.20.30.40
Subnet Mask             : 255.255.255.0
MAC Address             : 3c:ec:ef:12:34:56
Default Gateway IP      : 10.20.30.1
`
	lan6Print = `IPv6/IPv4 Support:       IPv6 and IPv4 supported
IPv6/IPv4 Addressing Enables: both
IPv6 Static Address 0:
    Enabled:        no
    Address:        ::/64
    Status:         disabled
IPv6 Dynamic Address 0:
    Source/Type:    SLAAC
    Address:        fe80::3eec:efff:fe12:3456/64
    Status:         active
IPv6 Dynamic Address 1:
    Source/Type:    DHCPv6
    Address:        fd00:10::40/64
    Status:         active
`
)

func newTestClient(e Executor, maxChannel int) *Client {
	return New("ipmitool", maxChannel, logrus.NewEntry(logrus.New()), WithExecutor(e))
}

func TestAddressAndMac(t *testing.T) {
	e := &mockExecutor{}
	e.On("Execute", "ipmitool", "lan", "print", "1").Return(lanPrintUnset, nil)
	e.On("Execute", "ipmitool", "lan", "print", "2").Return("", errors.Wrap(ErrCommand, "Invalid channel: 2"))
	e.On("Execute", "ipmitool", "lan", "print", "3").Return(lanPrintSet, nil)

	c := newTestClient(e, 3)

	ip, err := c.Address(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "10.20.30.40", ip.String())

	mac, err := c.Mac(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "3c:ec:ef:12:34:56", mac.String())

	e.AssertExpectations(t)
}

func TestSnapshotQueriesChannelsOnce(t *testing.T) {
	e := &mockExecutor{}
	e.On("Execute", "ipmitool", "lan", "print", "1").Return(lanPrintUnset, nil).Once()
	e.On("Execute", "ipmitool", "lan", "print", "2").Return(lanPrintSet, nil).Once()
	e.On("Execute", "ipmitool", "lan6", "print", "1").Return(lan6Print, nil).Once()

	s := newTestClient(e, 2).Snapshot()

	for i := 0; i < 3; i++ {
		ip, err := s.Address(context.Background())
		require.Nil(t, err)
		assert.Equal(t, "10.20.30.40", ip.String())

		mac, err := s.Mac(context.Background())
		require.Nil(t, err)
		assert.Equal(t, "3c:ec:ef:12:34:56", mac.String())

		ip6, err := s.V6Address(context.Background())
		require.Nil(t, err)
		assert.True(t, net.ParseIP("fd00:10::40").Equal(ip6))
	}

	e.AssertNumberOfCalls(t, "Execute", 3)
	e.AssertExpectations(t)
}

func TestSnapshotUnavailable(t *testing.T) {
	e := &mockExecutor{}
	e.On("Execute", "ipmitool", "lan", "print", "1").Return("", errors.Wrap(ErrUnavailable, "exec: not found")).Once()

	s := newTestClient(e, 11).Snapshot()

	_, err := s.Address(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Mac(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	e.AssertNumberOfCalls(t, "Execute", 1)
}

func TestAddressUnset(t *testing.T) {
	e := &mockExecutor{}
	e.On("Execute", "ipmitool", "lan", "print", "1").Return(lanPrintUnset, nil)

	c := newTestClient(e, 1)

	ip, err := c.Address(context.Background())
	assert.Nil(t, err)
	assert.Nil(t, ip)

	mac, err := c.Mac(context.Background())
	assert.Nil(t, err)
	assert.Nil(t, mac)
}

func TestUnavailable(t *testing.T) {
	e := &mockExecutor{}
	e.On("Execute", "ipmitool", "lan", "print", "1").Return("", errors.Wrap(ErrUnavailable, "exec: not found")).Once()
	e.On("Execute", "ipmitool", "lan6", "print", "1").Return("", errors.Wrap(ErrUnavailable, "exec: not found")).Once()

	c := newTestClient(e, 11)

	_, err := c.Address(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.V6Address(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	e.AssertExpectations(t)
}

func TestV6Address(t *testing.T) {
	e := &mockExecutor{}
	e.On("Execute", "ipmitool", "lan6", "print", "1").Return(lan6Print, nil)

	ip, err := newTestClient(e, 1).V6Address(context.Background())
	require.Nil(t, err)
	assert.True(t, net.ParseIP("fd00:10::40").Equal(ip))
}

func TestParseLan6PrintNoActive(t *testing.T) {
	out := `IPv6 Static Address 0:
    Address:        2001:db8::1/64
    Status:         disabled
`
	assert.Nil(t, parseLan6Print(out))
}

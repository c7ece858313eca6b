package bmc

import (
	"context"
	"testing"

	"github.com/bmc-toolbox/common"
	"github.com/metal-toolbox/hwmanager/internal/fixtures"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Open(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockClient) Inventory(ctx context.Context) (*common.Device, error) {
	args := m.Called(ctx)

	device, _ := args.Get(0).(*common.Device)

	return device, args.Error(1)
}

var testOptions = &model.BMCOptions{Address: "10.20.30.40", Username: "root", Password: "hunter2"}

func TestNewSource(t *testing.T) {
	_, err := NewSource(nil, logrus.New())
	assert.ErrorIs(t, err, ErrBMCOptions)

	_, err = NewSource(&model.BMCOptions{Address: "10.20.30.40"}, logrus.New())
	assert.ErrorIs(t, err, ErrBMCOptions)

	s, err := NewSource(testOptions, logrus.New())
	require.Nil(t, err)
	assert.NotNil(t, s.newClient)
}

func TestSourceInventory(t *testing.T) {
	tests := []struct {
		name      string
		openErr   error
		invErr    error
		device    *common.Device
		expectErr error
		closed    bool
	}{
		{
			name:   "inventory collected",
			device: fixtures.CopyInventory(fixtures.FX700),
			closed: true,
		},
		{
			name:      "login unauthorized",
			openErr:   errors.New("401: unauthorized"),
			expectErr: errBMCLoginUnAuthorized,
		},
		{
			name:      "login timeout",
			openErr:   errors.New("dial tcp: operation timed out"),
			expectErr: errBMCLoginTimeout,
		},
		{
			name:      "login error",
			openErr:   errors.New("connection refused"),
			expectErr: errBMCLogin,
		},
		{
			name:      "inventory error",
			invErr:    errors.New("no compatible System Odata IDs identified"),
			expectErr: errBMCInventory,
			closed:    true,
		},
		{
			name:      "empty inventory",
			expectErr: errBMCInventory,
			closed:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := new(mockClient)
			c.On("Open", mock.Anything).Return(tc.openErr)

			if tc.openErr == nil {
				c.On("Inventory", mock.Anything).Return(tc.device, tc.invErr)
				c.On("Close", mock.Anything).Return(nil)
			}

			s, err := NewSource(testOptions, logrus.New(), WithClientFunc(func() client { return c }))
			require.Nil(t, err)

			device, err := s.Inventory(context.Background())
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, device)
			} else {
				require.Nil(t, err)
				assert.Equal(t, "FX700", device.Model)
				assert.Len(t, device.CPUs, 1)
			}

			if tc.closed {
				c.AssertCalled(t, "Close", mock.Anything)
			} else {
				c.AssertNotCalled(t, "Close", mock.Anything)
			}

			c.AssertExpectations(t)
		})
	}
}

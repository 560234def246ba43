package packet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPidRejectsZero(t *testing.T) {
	_, err := NewPid(0)
	require.ErrorIs(t, err, ErrInvalidPid)

	pid, err := NewPid(1)
	require.NoError(t, err)
	require.Equal(t, Pid(1), pid)
}

func TestPidAddSub(t *testing.T) {
	cases := []struct {
		cur, d, prev, next uint16
	}{
		{2, 1, 1, 3},
		{100, 1, 99, 101},
		{1, 1, 65535, 2},
		{1, 2, 65534, 3},
		{1, 3, 65533, 4},
		{65535, 1, 65534, 1},
		{65535, 2, 65533, 2},
		{10, 65535, 10, 10},
		{10, 0, 10, 10},
		{1, 0, 1, 1},
		{65535, 0, 65535, 65535},
	}
	for _, tc := range cases {
		pid := Pid(tc.cur)
		require.Equal(t, Pid(tc.prev), pid.Sub(tc.d), "%d - %d", tc.cur, tc.d)
		require.Equal(t, Pid(tc.next), pid.Add(tc.d), "%d + %d", tc.cur, tc.d)
	}
}

func TestPidWrapNeverZero(t *testing.T) {
	pid := Pid(65500)
	for i := 0; i < 100; i++ {
		pid = pid.Add(1)
		require.NotZero(t, pid)
	}
	for i := 0; i < 200; i++ {
		pid = pid.Sub(1)
		require.NotZero(t, pid)
	}
}

func TestQosFromByte(t *testing.T) {
	for b := byte(0); b <= 2; b++ {
		q, err := qosFromByte(b)
		require.NoError(t, err)
		require.Equal(t, QoS(b), q)
	}
	_, err := qosFromByte(3)
	require.ErrorIs(t, err, ErrInvalidQoS)
	require.EqualError(t, err, "invalid QoS level: 3")
}

func TestQosPid(t *testing.T) {
	qp := AtMostOnce()
	require.Equal(t, QoS0, qp.QoS())
	_, ok := qp.Pid()
	require.False(t, ok)

	qp = AtLeastOnce(Pid(7))
	require.Equal(t, QoS1, qp.QoS())
	pid, ok := qp.Pid()
	require.True(t, ok)
	require.Equal(t, Pid(7), pid)

	qp = ExactlyOnce(Pid(8))
	require.Equal(t, QoS2, qp.QoS())
	pid, ok = qp.Pid()
	require.True(t, ok)
	require.Equal(t, Pid(8), pid)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "CONNECT", TypeConnect.String())
	require.Equal(t, "PUBLISH", TypePublish.String())
	require.Equal(t, "DISCONNECT", TypeDisconnect.String())
	require.Equal(t, "RESERVED", TypeReserved0.String())
	require.Equal(t, "RESERVED", TypeReserved15.String())
}

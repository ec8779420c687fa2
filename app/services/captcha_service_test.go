package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptchaVerify(t *testing.T) {
	svc, err := NewCaptchaService(2*time.Minute, 15, 220)
	require.NoError(t, err)

	t.Run("UnknownChallengeRejected", func(t *testing.T) {
		assert.False(t, svc.Verify(context.Background(), "no-such-challenge", 90))
	})

	t.Run("CorrectAngleAccepted", func(t *testing.T) {
		challenge, err := svc.Generate(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, challenge.ID)
		require.NotEmpty(t, challenge.MasterImageBase64)
		require.NotEmpty(t, challenge.ThumbImageBase64)

		impl := svc.(*captchaServiceImpl)
		entry, ok := impl.store.Get(challenge.ID)
		require.True(t, ok)

		assert.True(t, svc.Verify(context.Background(), challenge.ID, float64(entry.targetAngle)))
	})

	t.Run("ChallengeConsumedOnFirstAttempt", func(t *testing.T) {
		challenge, err := svc.Generate(context.Background())
		require.NoError(t, err)

		impl := svc.(*captchaServiceImpl)
		entry, ok := impl.store.Get(challenge.ID)
		require.True(t, ok)

		// A wildly wrong angle fails and burns the challenge
		assert.False(t, svc.Verify(context.Background(), challenge.ID, float64(entry.targetAngle+180)))
		assert.False(t, svc.Verify(context.Background(), challenge.ID, float64(entry.targetAngle)))
	})

	t.Run("ExpiredChallengeRejected", func(t *testing.T) {
		shortLived, err := NewCaptchaService(time.Nanosecond, 15, 220)
		require.NoError(t, err)

		challenge, err := shortLived.Generate(context.Background())
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		assert.False(t, shortLived.Verify(context.Background(), challenge.ID, 90))
	})
}

// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/zone-rando/internal/entities"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/objectives"
	objectivesmock "github.com/KirkDiggler/zone-rando/internal/orchestrators/objectives/mock"
	"github.com/KirkDiggler/zone-rando/internal/repositories/spoiler"
	spoilermock "github.com/KirkDiggler/zone-rando/internal/repositories/spoiler/mock"
)

// ExpectNoObjectives makes every Select call return an empty selection, as
// happens when required bosses mode is off
func ExpectNoObjectives(ctx context.Context, mockObjectives *objectivesmock.MockService, times int) {
	mockObjectives.EXPECT().
		Select(ctx, gomock.Any()).
		Return(&objectives.SelectOutput{}, nil).
		Times(times)
}

// ExpectSpoilerStored accepts one Create call, hands the stored spoiler to
// check and echoes a copy back
func ExpectSpoilerStored(ctx context.Context, mockRepo *spoilermock.MockRepository, check func(*entities.Spoiler)) {
	mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input spoiler.CreateInput) (*spoiler.CreateOutput, error) {
			if check != nil {
				check(input.Spoiler)
			}
			return &spoiler.CreateOutput{Spoiler: input.Spoiler.Clone()}, nil
		})
}

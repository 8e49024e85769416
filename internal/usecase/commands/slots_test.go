//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"price-in-time/internal/domain/timeslot"
	"price-in-time/internal/infra"
	"price-in-time/internal/pkg/errs"
	"price-in-time/internal/pkg/idgen"
	"price-in-time/internal/usecase/commands"
	"price-in-time/tests/common/builder"
	commandsmock "price-in-time/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFoundErr() error {
	return infra.WrapRepoErr("slot set not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func newSlotCommands(t *testing.T) (commands.SlotCommands, *commandsmock.MockSlotConfigRepository, *commandsmock.MockPriceRowRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	slotConfig := commandsmock.NewMockSlotConfigRepository(ctrl)
	priceRows := commandsmock.NewMockPriceRowRepository(ctrl)
	return commands.NewSlotCommands(slotConfig, priceRows, idgen.NewSequenceGenerator()), slotConfig, priceRows
}

func TestSaveProductTypeSlots_NewConfiguration(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	req := builder.NewSlotBuilder().BuildSaveCommand()

	var saved commands.SlotSetRecord
	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(nil, notFoundErr())
	slotConfig.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec commands.SlotSetRecord) error {
			saved = rec
			return nil
		})

	result, err := uc.SaveProductTypeSlots(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Disabled)
	require.Len(t, result.SlotIDs, 3)

	assert.Equal(t, "flower", saved.ProductType)
	assert.True(t, saved.Enabled)
	require.Len(t, saved.Slots, 3)
	for i, s := range saved.Slots {
		assert.Equal(t, result.SlotIDs[i], s.ID)
		assert.Len(t, s.ID, idgen.SlotIDLength)
		assert.Equal(t, i, s.Position)
	}
	assert.Equal(t, "09:00:00", saved.Slots[0].Start)
	assert.Equal(t, "12:00:00", saved.Slots[0].End)
	assert.True(t, saved.Slots[1].FreeShipping)
}

func TestSaveProductTypeSlots_PreservesExistingIDs(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	existing := builder.NewSlotBuilder().BuildSetRecord()
	req := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		// shift every window; ids must survive the edit
		b.Times[0].Start, b.Times[0].End = "08:00:00", "11:00:00"
		b.Times[1].Start, b.Times[1].End = "12:00:00", "17:00:00"
		b.Times[2].Start, b.Times[2].End = "18:00:00", "21:00:00"
	}).BuildSaveCommand()

	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(existing, nil)
	slotConfig.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	result, err := uc.SaveProductTypeSlots(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"aaaa0000aaaa0000aaaa",
		"bbbb1111bbbb1111bbbb",
		"cccc2222cccc2222cccc",
	}, result.SlotIDs)
}

func TestSaveProductTypeSlots_DisableDeletesConfiguration(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	existing := builder.NewSlotBuilder().BuildSetRecord()
	req := commands.SaveSlotsRequest{ProductType: "flower", Enabled: false}

	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(existing, nil)
	slotConfig.EXPECT().DeleteProductType(ctx, "flower").Return(nil)

	result, err := uc.SaveProductTypeSlots(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Disabled)
	assert.Empty(t, result.SlotIDs)
}

func TestSaveProductTypeSlots_DisableWithoutExistingIsNoop(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	req := commands.SaveSlotsRequest{ProductType: "flower", Enabled: false}

	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(nil, notFoundErr())

	result, err := uc.SaveProductTypeSlots(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Disabled)
}

func TestSaveProductTypeSlots_RejectsOverlap(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	req := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Times[1].Start = "11:00:00" // starts inside the first window
	}).BuildSaveCommand()

	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(nil, notFoundErr())

	_, err := uc.SaveProductTypeSlots(ctx, req)
	var overlapErr *timeslot.OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, 0, overlapErr.ConflictIndex)
}

func TestSaveProductTypeSlots_RejectsMalformedTime(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	req := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Times[2].End = "25:00:00"
	}).BuildSaveCommand()

	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(nil, notFoundErr())

	_, err := uc.SaveProductTypeSlots(ctx, req)
	var fieldErr *commands.SlotFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, 2, fieldErr.Position)
	assert.Equal(t, "end", fieldErr.Field)
}

func TestSaveProductTypeSlots_EmptyProductType(t *testing.T) {
	uc, _, _ := newSlotCommands(t)

	_, err := uc.SaveProductTypeSlots(context.Background(), commands.SaveSlotsRequest{Enabled: true})
	assert.ErrorIs(t, err, errs.ErrProductTypeEmpty)
}

func TestSaveSkuSlotPrices_ReplacesRows(t *testing.T) {
	uc, slotConfig, priceRows := newSlotCommands(t)
	ctx := context.Background()

	existing := builder.NewSlotBuilder().BuildSetRecord()
	rows := []commands.SlotPriceInput{
		{SlotID: "aaaa0000aaaa0000aaaa", Number: "9.50", CurrencyCode: "USD"},
		{SlotID: "bbbb1111bbbb1111bbbb", Number: "12.00", CurrencyCode: "USD"},
	}

	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(existing, nil)
	priceRows.EXPECT().ReplaceForSKU(ctx, "SKU-1", "flower", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, records []commands.PriceRowRecord) error {
			require.Len(t, records, 2)
			assert.Equal(t, "SKU-1", records[0].SKU)
			assert.Equal(t, "aaaa0000aaaa0000aaaa", records[0].SlotID)
			assert.Equal(t, "9.50", records[0].Number)
			return nil
		})

	require.NoError(t, uc.SaveSkuSlotPrices(ctx, "SKU-1", "flower", rows))
}

func TestSaveSkuSlotPrices_UnknownSlotID(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	existing := builder.NewSlotBuilder().BuildSetRecord()
	rows := []commands.SlotPriceInput{
		{SlotID: "ffff9999ffff9999ffff", Number: "9.50", CurrencyCode: "USD"},
	}

	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(existing, nil)

	err := uc.SaveSkuSlotPrices(ctx, "SKU-1", "flower", rows)
	var fieldErr *commands.SlotFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, 0, fieldErr.Position)
	assert.Equal(t, "slot_id", fieldErr.Field)
	assert.ErrorIs(t, err, errs.ErrUnknownSlotID)
}

func TestSaveSkuSlotPrices_InvalidPrice(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	existing := builder.NewSlotBuilder().BuildSetRecord()
	rows := []commands.SlotPriceInput{
		{SlotID: "aaaa0000aaaa0000aaaa", Number: "nine fifty", CurrencyCode: "USD"},
	}

	slotConfig.EXPECT().FindByProductType(ctx, "flower").Return(existing, nil)

	err := uc.SaveSkuSlotPrices(ctx, "SKU-1", "flower", rows)
	var fieldErr *commands.SlotFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "price", fieldErr.Field)
}

func TestSaveSkuSlotPrices_MissingConfiguration(t *testing.T) {
	uc, slotConfig, _ := newSlotCommands(t)
	ctx := context.Background()

	slotConfig.EXPECT().FindByProductType(ctx, "gift").Return(nil, notFoundErr())

	err := uc.SaveSkuSlotPrices(ctx, "SKU-1", "gift", nil)
	assert.ErrorIs(t, err, errs.ErrSlotSetNotFound)
}

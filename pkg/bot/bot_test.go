package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/plantbot/pkg/bot/mocks"
	"github.com/umputun/plantbot/pkg/domain"
	"github.com/umputun/plantbot/pkg/repository"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestBot(t *testing.T) (*Bot, *repository.PlantStore, *testClock) {
	t.Helper()
	store := repository.NewPlantStore(repository.NewMemoryKV())
	clock := &testClock{now: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)}
	return New(Params{Store: store, Now: clock.Now, Location: time.UTC}), store, clock
}

func alice(cmd, args string) Request {
	return Request{ChatID: -1001, ChatType: "supergroup", UserID: "111", FirstName: "Alice", UserName: "alice_w",
		Command: cmd, Args: args}
}

func bob(cmd, args string) Request {
	return Request{ChatID: -1001, ChatType: "supergroup", UserID: "222", UserName: "bobby", Command: cmd, Args: args}
}

func TestBot_Start(t *testing.T) {
	ctx := context.Background()
	b, store, clock := newTestBot(t)

	reply := b.Handle(ctx, alice("start", ""))
	assert.Contains(t, reply, "Welcome Alice! Plant Bot activated for this group!")
	assert.Contains(t, reply, "Your plant: Alice's Plant")
	assert.Contains(t, reply, "/allplants")
	assert.Equal(t, []int64{-1001}, store.RegisteredChats(ctx))

	p, ok := store.GetPlant(ctx, "111")
	require.True(t, ok)
	assert.Equal(t, clock.now, p.CreatedAt)

	t.Run("second start keeps history", func(t *testing.T) {
		b.Handle(ctx, alice("watered", ""))
		wateredAt := clock.now
		clock.now = clock.now.Add(time.Hour)

		req := alice("start", "")
		req.FirstName = "Ally"
		req.ChatType = "private"
		req.ChatID = 111
		reply := b.Handle(ctx, req)
		assert.Contains(t, reply, "Welcome Ally! Your personal Plant Bot!")

		plants := store.ListPlants(ctx)
		require.Len(t, plants, 1, "one plant per user")
		p := plants[0].Plant
		assert.Equal(t, "Ally", p.OwnerName)
		assert.Equal(t, "Alice's Plant", p.Name)
		require.NotNil(t, p.LastWatered)
		assert.Equal(t, wateredAt, *p.LastWatered)
		assert.Equal(t, time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), p.CreatedAt)
		assert.ElementsMatch(t, []int64{-1001, 111}, store.RegisteredChats(ctx))
	})

	t.Run("no names at all", func(t *testing.T) {
		reply := b.Handle(ctx, Request{ChatID: 5, ChatType: "private", UserID: "555", Command: "start"})
		assert.Contains(t, reply, "Welcome Unknown!")
		assert.Contains(t, reply, "Unknown's Plant")
	})
}

func TestBot_Watered(t *testing.T) {
	ctx := context.Background()
	b, store, clock := newTestBot(t)

	reply := b.Handle(ctx, bob("watered", ""))
	assert.Equal(t, "✅ bobby watered bobby's Plant! 🌱\n📅 2025-09-01 10:00\n🗓️ Next watering in 3 days", reply)

	p, ok := store.GetPlant(ctx, "222")
	require.True(t, ok, "record auto-created")
	require.NotNil(t, p.LastWatered)
	assert.Equal(t, clock.now, *p.LastWatered)
	assert.Equal(t, "bobby", p.WateredBy)
	assert.Equal(t, clock.now, p.CreatedAt)
	assert.Empty(t, store.RegisteredChats(ctx), "watering does not register the chat")

	req := Request{ChatID: 9, ChatType: "private", UserID: "999", Command: "watered"}
	reply = b.Handle(ctx, req)
	assert.True(t, strings.HasPrefix(reply, "✅ Someone's Plant is thriving! 🌱"), reply)
}

func TestBot_MyStatusScenario(t *testing.T) {
	ctx := context.Background()
	b, store, clock := newTestBot(t)

	assert.Equal(t, "🌱 You haven't registered yet! Use /start first.", b.Handle(ctx, alice("mystatus", "")))

	b.Handle(ctx, alice("start", ""))
	assert.Equal(t, "🌱 Alice's Plant has never been watered yet!", b.Handle(ctx, alice("mystatus", "")))

	t0 := clock.now
	b.Handle(ctx, alice("watered", ""))

	clock.now = t0.AddDate(0, 0, 2)
	reply := b.Handle(ctx, alice("mystatus", ""))
	assert.Equal(t, "📊 Alice's Plant Status:\n\n"+
		"💧 Last watered: 2025-09-01 10:00\n"+
		"👤 Watered by: Alice\n"+
		"⏰ Days since watered: 2\n"+
		"📅 Next watering: 2025-09-04\n"+
		"✅ Good for 1 more day(s)", reply)

	clock.now = t0.AddDate(0, 0, 3)
	reply = b.Handle(ctx, alice("mystatus", ""))
	assert.Contains(t, reply, "⏰ Days since watered: 3\n")
	assert.True(t, strings.HasSuffix(reply, "⚠️ Needs watering!"), reply)

	_, ok := store.GetPlant(ctx, "111")
	assert.True(t, ok)
}

func TestBot_AllStatus(t *testing.T) {
	ctx := context.Background()
	b, _, clock := newTestBot(t)

	assert.Equal(t, "🌱 No plants registered yet! Everyone should use /start first.", b.Handle(ctx, alice("status", "")))
	assert.Equal(t, "🌱 No plants registered yet!", b.Handle(ctx, alice("allplants", "")))

	b.Handle(ctx, alice("start", ""))
	b.Handle(ctx, bob("start", ""))
	t0 := clock.now
	b.Handle(ctx, alice("watered", ""))
	clock.now = t0.AddDate(0, 0, 4)

	reply := b.Handle(ctx, bob("status", ""))
	assert.Equal(t, "🌿 All Plants Status:\n\n"+
		"🌱 Alice's Plant (Alice)\n"+
		"   💧 Last: 09-01 10:00 by Alice\n"+
		"   ⏰ 4 days ago, next 09-04\n"+
		"   ⚠️ Needs water!\n\n"+
		"🌱 bobby's Plant (bobby)\n"+
		"   ❓ Never watered", reply)

	b.Handle(ctx, bob("watered", ""))
	reply = b.Handle(ctx, alice("status", ""))
	assert.Contains(t, reply, "🌱 bobby's Plant (bobby)\n   💧 Last: 09-05 10:00 by bobby\n   ⏰ 0 days ago, next 09-08\n   ✅ Good for 3 day(s)")
	assert.Contains(t, reply, "🌱 Alice's Plant (Alice)\n   💧 Last: 09-01 10:00")

	reply = b.Handle(ctx, alice("allplants", ""))
	assert.Equal(t, "🌿 Registered Plants:\n\n🌱 Alice's Plant - owned by Alice\n🌱 bobby's Plant - owned by bobby", reply)
}

func TestBot_SetPlant(t *testing.T) {
	ctx := context.Background()
	b, store, _ := newTestBot(t)

	tests := []struct {
		name     string
		args     string
		reply    string
		wantName string
	}{
		{name: "no argument on fresh user", args: "",
			reply:    "🌱 Current plant name: Alice's Plant\n\nTo change it, use: /setplant New Plant Name",
			wantName: "Alice's Plant"},
		{name: "rename", args: "  Monty   the   Monstera ", reply: "🌱 Your plant is now named: Monty the Monstera",
			wantName: "Monty the Monstera"},
		{name: "markup stripped", args: "<b>Fern</b> & Co", reply: "🌱 Your plant is now named: Fern & Co",
			wantName: "Fern & Co"},
		{name: "markup only is like no argument", args: "<i></i>",
			reply:    "🌱 Current plant name: Fern & Co\n\nTo change it, use: /setplant New Plant Name",
			wantName: "Fern & Co"},
		{name: "apostrophe kept", args: "Granny's Cactus", reply: "🌱 Your plant is now named: Granny's Cactus",
			wantName: "Granny's Cactus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reply, b.Handle(ctx, alice("setplant", tt.args)))
			p, ok := store.GetPlant(ctx, "111")
			require.True(t, ok, "record auto-created")
			assert.Equal(t, tt.wantName, p.Name)
		})
	}

	t.Run("long name is cut", func(t *testing.T) {
		b.Handle(ctx, alice("setplant", strings.Repeat("🌵", 100)))
		p, ok := store.GetPlant(ctx, "111")
		require.True(t, ok)
		assert.Equal(t, strings.Repeat("🌵", maxPlantNameLen), p.Name)
	})
}

func TestBot_Reminders(t *testing.T) {
	ctx := context.Background()
	b, store, _ := newTestBot(t)

	assert.Equal(t, "❌ Watering reminders disabled!", b.Handle(ctx, alice("disable", "")))
	assert.False(t, store.RemindersEnabled(ctx))
	assert.Equal(t, "✅ Watering reminders enabled for everyone!", b.Handle(ctx, bob("enable", "")))
	assert.True(t, store.RemindersEnabled(ctx))
}

func TestBot_Help(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBot(t)

	group := b.Handle(ctx, alice("help", ""))
	assert.Contains(t, group, "🌱 Plant Bot Commands:")
	assert.Contains(t, group, "/allplants")
	assert.Contains(t, group, "Water every 3 days, plants untouched for 7 days are removed.")

	req := alice("help", "")
	req.ChatType = "private"
	private := b.Handle(ctx, req)
	assert.Contains(t, private, "🌱 Personal Plant Bot Commands:")
	assert.NotEqual(t, group, private)
}

func TestBot_UnknownCommand(t *testing.T) {
	b, _, _ := newTestBot(t)
	assert.Empty(t, b.Handle(context.Background(), alice("dance", "")))
	assert.Empty(t, b.Handle(context.Background(), alice("", "")))
	assert.NotEmpty(t, b.Handle(context.Background(), alice("HELP", "")), "commands are case insensitive")
}

func TestBot_StoreDown(t *testing.T) {
	ctx := context.Background()
	store := &mocks.StoreMock{
		LookupPlantFunc: func(context.Context, string) (domain.Plant, domain.Lookup) {
			return domain.Plant{}, domain.LookupAbsent
		},
		SavePlantFunc:           func(context.Context, string, domain.Plant) bool { return false },
		ListPlantsFunc:          func(context.Context) []domain.OwnedPlant { return nil },
		AddRegisteredChatFunc:   func(context.Context, int64) bool { return false },
		SetRemindersEnabledFunc: func(context.Context, bool) bool { return false },
	}
	b := New(Params{Store: store, Location: time.UTC})

	assert.Contains(t, b.Handle(ctx, alice("start", "")), "Welcome Alice!")
	assert.Contains(t, b.Handle(ctx, alice("watered", "")), "✅ Alice watered Alice's Plant!")
	assert.Equal(t, noPlantsStatus, b.Handle(ctx, alice("status", "")))
	assert.Equal(t, notRegisteredText, b.Handle(ctx, alice("mystatus", "")))
	assert.Equal(t, remindersOffText, b.Handle(ctx, alice("disable", "")))

	assert.Len(t, store.AddRegisteredChatCalls(), 1)
	require.Len(t, store.SavePlantCalls(), 2)
	assert.Equal(t, "111", store.SavePlantCalls()[1].OwnerID)
	assert.NotNil(t, store.SavePlantCalls()[1].P.LastWatered)
}

func TestBot_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	store := &mocks.StoreMock{
		LookupPlantFunc: func(context.Context, string) (domain.Plant, domain.Lookup) {
			return domain.Plant{}, domain.LookupFailed
		},
		SavePlantFunc:         func(context.Context, string, domain.Plant) bool { return true },
		AddRegisteredChatFunc: func(context.Context, int64) bool { return true },
	}
	b := New(Params{Store: store, Location: time.UTC})

	for _, cmd := range []string{"start", "watered", "mystatus", "setplant"} {
		t.Run(cmd, func(t *testing.T) {
			assert.Equal(t, storeBusyText, b.Handle(ctx, alice(cmd, "Fern")))
		})
	}
	assert.Empty(t, store.SavePlantCalls(), "record that could not be read is never overwritten")
	assert.Len(t, store.AddRegisteredChatCalls(), 1, "chat registration doesn't depend on the plant read")
	assert.Len(t, store.LookupPlantCalls(), 4)
}

func TestBot_OwnerNameRefresh(t *testing.T) {
	ctx := context.Background()
	b, store, _ := newTestBot(t)
	b.Handle(ctx, alice("start", ""))

	renamed := func(cmd, args string) Request {
		req := alice(cmd, args)
		req.FirstName = "Alicia"
		return req
	}

	t.Run("mystatus", func(t *testing.T) {
		assert.Equal(t, "🌱 Alice's Plant has never been watered yet!", b.Handle(ctx, renamed("mystatus", "")))
		p, ok := store.GetPlant(ctx, "111")
		require.True(t, ok)
		assert.Equal(t, "Alicia", p.OwnerName)
		assert.Equal(t, "Alice's Plant", p.Name, "plant name untouched")
	})

	t.Run("setplant without argument", func(t *testing.T) {
		req := renamed("setplant", "")
		req.FirstName = "Ali"
		b.Handle(ctx, req)
		p, ok := store.GetPlant(ctx, "111")
		require.True(t, ok)
		assert.Equal(t, "Ali", p.OwnerName)
	})

	t.Run("setplant with name", func(t *testing.T) {
		b.Handle(ctx, renamed("setplant", "Fern"))
		p, ok := store.GetPlant(ctx, "111")
		require.True(t, ok)
		assert.Equal(t, "Alicia", p.OwnerName)
		assert.Equal(t, "Fern", p.Name)
	})

	t.Run("same name is not saved again", func(t *testing.T) {
		mock := &mocks.StoreMock{
			LookupPlantFunc: func(context.Context, string) (domain.Plant, domain.Lookup) {
				return domain.Plant{OwnerName: "Alice", Name: "Fern"}, domain.LookupFound
			},
			SavePlantFunc: func(context.Context, string, domain.Plant) bool { return true },
		}
		New(Params{Store: mock, Location: time.UTC}).Handle(ctx, alice("mystatus", ""))
		assert.Empty(t, mock.SavePlantCalls())
	})
}

func TestCommands(t *testing.T) {
	cmds := Commands()
	require.Len(t, cmds, 9)
	b, _, _ := newTestBot(t)
	for _, c := range cmds {
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, b.Handle(context.Background(), alice(c.Name, "")), "command %s handled", c.Name)
	}
}

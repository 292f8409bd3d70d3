package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/umputun/plantbot/pkg/domain"
)

func renderMyStatus(p domain.Plant, st domain.WateringStatus, loc *time.Location) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 %s Status:\n\n", p.Name)
	fmt.Fprintf(&sb, "💧 Last watered: %s\n", st.LastWatered.In(loc).Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "👤 Watered by: %s\n", orUnknown(st.WateredBy))
	fmt.Fprintf(&sb, "⏰ Days since watered: %d\n", st.DaysSince)
	fmt.Fprintf(&sb, "📅 Next watering: %s\n", st.NextDue.In(loc).Format("2006-01-02"))
	if st.NeedsWater {
		sb.WriteString("⚠️ Needs watering!")
	} else {
		fmt.Fprintf(&sb, "✅ Good for %d more day(s)", st.DaysRemaining)
	}
	return sb.String()
}

// renderAllStatus makes one block per plant, never watered plants get a short block
func renderAllStatus(plants []domain.OwnedPlant, now time.Time, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString("🌿 All Plants Status:\n")
	for _, op := range plants {
		p := op.Plant
		fmt.Fprintf(&sb, "\n🌱 %s (%s)\n", p.Name, orUnknown(p.OwnerName))
		if !p.Watered() {
			sb.WriteString("   ❓ Never watered\n")
			continue
		}
		st := domain.Status(p, now)
		fmt.Fprintf(&sb, "   💧 Last: %s by %s\n", st.LastWatered.In(loc).Format("01-02 15:04"), orUnknown(st.WateredBy))
		fmt.Fprintf(&sb, "   ⏰ %d days ago, next %s\n", st.DaysSince, st.NextDue.In(loc).Format("01-02"))
		if st.NeedsWater {
			sb.WriteString("   ⚠️ Needs water!\n")
		} else {
			fmt.Fprintf(&sb, "   ✅ Good for %d day(s)\n", st.DaysRemaining)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderPlantList(plants []domain.OwnedPlant) string {
	var sb strings.Builder
	sb.WriteString("🌿 Registered Plants:\n\n")
	for _, op := range plants {
		fmt.Fprintf(&sb, "🌱 %s - owned by %s\n", op.Plant.Name, orUnknown(op.Plant.OwnerName))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

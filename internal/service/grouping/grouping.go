// Package grouping сворачивает почасовые бронирования в непрерывные интервалы.
// Группы вычисляются при каждом чтении и нигде не хранятся.
package grouping

import (
	"sort"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// View определяет, какие записи попадают в представление и по какому ключу они сливаются
type View struct {
	include        func(r *domain.Reservation) bool
	splitByPurpose bool
}

// ApprovalQueue очередь на согласование: только Pending.
// Заявки с разной целью не объединяются.
func ApprovalQueue() View {
	return View{
		include:        func(r *domain.Reservation) bool { return r.Status == domain.StatusPending },
		splitByPurpose: true,
	}
}

// History завершенные заявки (Approved и Rejected)
func History() View {
	return View{
		include: func(r *domain.Reservation) bool { return r.Status.In(domain.CompletedStatuses) },
	}
}

// StudentHistory все заявки одного пользователя
func StudentHistory(username string) View {
	return View{
		include: func(r *domain.Reservation) bool { return r.Requester == username },
	}
}

type groupKey struct {
	room      string
	date      string
	requester string
	status    domain.ReservationStatus
	purpose   string
}

func (v View) key(r *domain.Reservation) groupKey {
	k := groupKey{
		room:      r.Room,
		date:      r.Date.Format(domain.DateFormat),
		requester: r.Requester,
		status:    r.Status,
	}
	if v.splitByPurpose {
		k.purpose = r.Purpose
	}
	return k
}

type hourly struct {
	r    *domain.Reservation
	hour int
}

// Group строит группы представления, новые даты первыми
// Записи с некорректным временем пропускаются
func Group(reservations []*domain.Reservation, view View) []*domain.ReservationGroup {
	items := make([]hourly, 0, len(reservations))
	for _, r := range reservations {
		if r == nil || (view.include != nil && !view.include(r)) {
			continue
		}
		hour, err := r.Time.Hour()
		if err != nil {
			continue
		}
		items = append(items, hourly{r: r, hour: hour})
	}

	// Порядок обхода: дата, помещение, пользователь, время, id
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.r.Date.Equal(b.r.Date) {
			return a.r.Date.Before(b.r.Date)
		}
		if a.r.Room != b.r.Room {
			return a.r.Room < b.r.Room
		}
		if a.r.Requester != b.r.Requester {
			return a.r.Requester < b.r.Requester
		}
		if a.hour != b.hour {
			return a.hour < b.hour
		}
		return a.r.ID < b.r.ID
	})

	var (
		groups   []*domain.ReservationGroup
		current  *domain.ReservationGroup
		curKey   groupKey
		lastHour int
	)

	closeGroup := func() {
		if current == nil {
			return
		}
		current.EndTime = types.NewHourMark(lastHour + 1)
		groups = append(groups, current)
	}

	for _, it := range items {
		k := view.key(it.r)
		// Повтор того же часа сливается, старые данные могли содержать дубли
		if current != nil && k == curKey && (it.hour == lastHour || it.hour == lastHour+1) {
			current.IDs = append(current.IDs, it.r.ID)
			lastHour = it.hour
			continue
		}

		closeGroup()
		current = newGroup(it.r)
		curKey = k
		lastHour = it.hour
	}
	closeGroup()

	sortForDisplay(groups)
	return groups
}

func newGroup(r *domain.Reservation) *domain.ReservationGroup {
	g := &domain.ReservationGroup{
		IDs:           []string{r.ID},
		Room:          r.Room,
		Date:          r.Date,
		Requester:     r.Requester,
		Status:        r.Status,
		StartTime:     r.Time,
		RequesterType: r.RequesterType,
		Organization:  r.Organization,
		Purpose:       r.Purpose,
	}
	if r.Equipment != nil {
		g.Equipment = append([]string(nil), r.Equipment...)
	}
	if r.RejectionReason != nil {
		reason := *r.RejectionReason
		g.RejectionReason = &reason
	}
	return g
}

// sortForDisplay сортирует по дате и времени начала по убыванию, сохраняя порядок равных
func sortForDisplay(groups []*domain.ReservationGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.StartTime.IsAfter(b.StartTime)
	})
}

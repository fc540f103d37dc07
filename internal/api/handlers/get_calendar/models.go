package get_calendar

import (
	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	getCalendar "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP модель сетки дня
type CalendarResponse struct {
	Date     string         `json:"date"`
	Past     bool           `json:"past"`
	CanBook  bool           `json:"canBook"`
	Rooms    []string       `json:"rooms"`
	Hours    []string       `json:"hours"`
	Cells    []CellResponse `json:"cells"`
	Occupied int            `json:"occupied"`
}

type CellResponse struct {
	Room  string `json:"room"`
	Time  string `json:"time"`
	State string `json:"state"`
	Mine  bool   `json:"mine,omitempty"`
}

func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Past:     resp.Past,
		CanBook:  resp.CanBook,
		Rooms:    resp.Rooms,
		Hours:    make([]string, 0, len(resp.Hours)),
		Cells:    make([]CellResponse, 0, len(resp.Cells)),
		Occupied: resp.Occupied,
	}
	for _, h := range resp.Hours {
		out.Hours = append(out.Hours, h.String())
	}
	for _, c := range resp.Cells {
		out.Cells = append(out.Cells, CellResponse{
			Room:  c.Room,
			Time:  c.Time.String(),
			State: string(c.State),
			Mine:  c.Mine,
		})
	}
	return out
}

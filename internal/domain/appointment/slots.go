package appointment

import (
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// ===============================
// Slots de atendimento
// ===============================
//
// O lava rápido atende somente aos finais de semana, em janelas fixas
// de duas horas: 08:00, 10:00, 12:00, 14:00, 16:00 e 18:00.

const (
	SlotOpenHour  = 8
	SlotCloseHour = 18
	SlotStepHours = 2
)

type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotOccupied  SlotState = "occupied"
	SlotPast      SlotState = "past"
)

type SlotOffer struct {
	Hour  int       `json:"hour"`
	State SlotState `json:"state"`
}

func (s SlotOffer) Selectable() bool {
	return s.State == SlotAvailable
}

// SlotHours enumera as horas de início em ordem crescente.
func SlotHours() []int {
	var hours []int
	for h := SlotOpenHour; h <= SlotCloseHour; h += SlotStepHours {
		hours = append(hours, h)
	}
	return hours
}

// ===============================
// Datas de calendário
// ===============================

// LocalDate é uma data de calendário pura (ano, mês, dia), sem fuso.
// Datas e horas de slot circulam como tuplas simples e só viram
// time.Time na fronteira com o banco — ida e volta por Date/ISO foi a
// fonte recorrente de erros de um dia no sistema antigo.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) LocalDate {
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return LocalDate{}, httperr.ErrBusiness("invalid_date")
	}
	return DateOf(t), nil
}

func (d LocalDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d LocalDate) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d LocalDate) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// At materializa a data com uma hora de slot no fuso do lava rápido.
func (d LocalDate) At(hour int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, 0, 0, 0, loc)
}

// ===============================
// Normalização e validação
// ===============================

// NormalizeToSlot trunca o horário para a fronteira do slot
// (minutos, segundos e nanos zerados). Sempre aplicada no servidor,
// mesmo quando o cliente já envia o valor alinhado.
func NormalizeToSlot(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// ValidateSlot confere se um horário já normalizado cai em um slot
// oferecido: fim de semana, hora par entre 08 e 18.
func ValidateSlot(t time.Time) error {
	if !DateOf(t).IsWeekend() {
		return httperr.ErrBusiness("invalid_date")
	}

	h := t.Hour()
	if h < SlotOpenHour || h > SlotCloseHour || (h-SlotOpenHour)%SlotStepHours != 0 {
		return httperr.ErrBusiness("invalid_slot")
	}

	return nil
}

// ===============================
// Disponibilidade do dia
// ===============================

// ComputeDaySlots monta a lista de slots do dia em ordem crescente.
//
// Um slot está ocupado quando existe agendamento pendente cuja data
// local e hora coincidem com o slot; pending é o único status que
// ocupa — cancelar ou concluir libera o horário. Um slot já passou
// quando a data é hoje e a hora do slot é <= hora atual.
//
// Os horários persistidos podem vir com encodings de fuso distintos;
// a comparação converte tudo para o fuso de "now" antes de extrair
// data e hora. A função nunca altera a entrada.
func ComputeDaySlots(
	date LocalDate,
	existing []models.Appointment,
	now time.Time,
) ([]SlotOffer, error) {

	if !date.IsWeekend() {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	loc := now.Location()

	occupied := make(map[int]bool, len(existing))
	for _, ap := range existing {
		if ap.Status != string(StatusPending) {
			continue
		}
		local := ap.ScheduledAt.In(loc)
		if DateOf(local) == date {
			occupied[local.Hour()] = true
		}
	}

	isToday := DateOf(now) == date

	offers := make([]SlotOffer, 0, len(SlotHours()))
	for _, h := range SlotHours() {
		state := SlotAvailable
		switch {
		case isToday && h <= now.Hour():
			state = SlotPast
		case occupied[h]:
			state = SlotOccupied
		}
		offers = append(offers, SlotOffer{Hour: h, State: state})
	}

	return offers, nil
}

package program

type Phase string

const (
	PhaseAccumulation    Phase = "accumulation"
	PhaseIntensification Phase = "intensification"
	PhasePeaking         Phase = "peaking"
	PhaseCompetitionPrep Phase = "competition-prep"
	PhaseTaper           Phase = "taper"
)

// TaperWeek is the final low-volume week of the program.
const TaperWeek = 16

// PhaseForWeek maps a program week to its training phase.
// Weeks past the taper stay in taper, weeks before 1 count as accumulation.
func PhaseForWeek(week int) Phase {
	switch {
	case week <= 4:
		return PhaseAccumulation
	case week <= 8:
		return PhaseIntensification
	case week <= 11:
		return PhasePeaking
	case week <= 15:
		return PhaseCompetitionPrep
	default:
		return PhaseTaper
	}
}

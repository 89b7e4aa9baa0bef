package reactions

import (
	"github.com/2beens/liftlog/internal/program"
	"github.com/2beens/liftlog/internal/training"
)

type CatalogKey struct {
	Trigger     Trigger
	Personality training.Personality
}

// Catalog maps a trigger and personality to its phrasings. An empty or
// missing list means the combination has nothing to say.
type Catalog map[CatalogKey][]string

func (c Catalog) Phrasings(trigger Trigger, personality training.Personality) []string {
	return c[CatalogKey{Trigger: trigger, Personality: personality}]
}

func (c Catalog) add(trigger Trigger, coach, hype, deadpan []string) {
	c[CatalogKey{trigger, training.PersonalityCoach}] = coach
	c[CatalogKey{trigger, training.PersonalityHype}] = hype
	c[CatalogKey{trigger, training.PersonalityDeadpan}] = deadpan
}

// DefaultCatalog returns the built-in phrasings. Placeholders: {exercise},
// {weight}, {unit}, {reps}, {e1rm}, {rpe}, {prior}.
func DefaultCatalog() Catalog {
	c := Catalog{}

	c.add(TriggerWeightPR,
		[]string{
			"New best on {exercise}: {weight} {unit}, up from {prior}. Earned it.",
			"{exercise} PR at {weight} {unit}. That is what the training is for.",
		},
		[]string{
			"{weight} {unit} ON {exercise}!!! NEW PR, LET'S GO!",
			"Who moved {weight} {unit}? YOU did. {exercise} PR!",
			"Previous best {prior}? Ancient history. {weight} {unit}!",
		},
		[]string{
			"{exercise}: {weight} {unit}. Heavier than before. Noted.",
			"You lifted {weight} {unit}. The bar did not object.",
		},
	)
	c.add(TriggerE1RMPR,
		[]string{
			"Estimated max on {exercise} is now {e1rm} {unit}. Strength is trending the right way.",
			"That {exercise} set puts your e1RM at {e1rm} {unit}, a new high.",
		},
		[]string{
			"E1RM JUST HIT {e1rm} {unit} ON {exercise}! THE MATH IS ON YOUR SIDE!",
			"{e1rm} {unit} estimated max! Numbers don't lie!",
		},
		[]string{
			"Epley says {e1rm} {unit}. Epley is rarely excited.",
			"New estimated max: {e1rm} {unit}. Spreadsheet updated, presumably.",
		},
	)
	c.add(TriggerRepPR,
		[]string{
			"{reps} reps at {weight} {unit} on {exercise}. More work at the same load is progress.",
			"Rep PR: {reps} at {weight} {unit}. Capacity is going up.",
		},
		[]string{
			"{reps} REPS AT {weight} {unit}?! REP PR, UNREAL!",
			"More reps than ever at {weight} {unit}! Keep stacking!",
		},
		[]string{
			"{reps} reps. Previously fewer. That is how counting works.",
		},
	)
	c.add(TriggerRPEDrop,
		[]string{
			"{exercise} felt easier than last time: RPE {rpe} vs {prior}. Adaptation at work.",
			"Same load range, lower effort (RPE {rpe}). Good sign.",
		},
		[]string{
			"RPE {rpe}, down from {prior}! You're getting STRONGER!",
			"That {exercise} moved like butter. RPE {rpe}!",
		},
		[]string{
			"RPE {rpe}. Last time {prior}. The weights got lighter, apparently.",
		},
	)
	c.add(TriggerGrind,
		[]string{
			"RPE {rpe} on {exercise} and you finished it. Recover well tonight.",
			"That was a true grind. Completing it matters.",
		},
		[]string{
			"RPE {rpe} AND YOU STILL GOT IT! WARRIOR MODE!",
			"That grind on {exercise} was cinematic!",
		},
		[]string{
			"RPE {rpe}. Your face probably did something.",
			"It went up. Eventually.",
		},
	)
	c.add(TriggerSandbag,
		[]string{
			"RPE {rpe} at {weight} {unit} is high for your training max. Check sleep, food and stress.",
			"{exercise} felt harder than the numbers suggest. Worth watching recovery.",
		},
		[]string{
			"RPE {rpe} at {weight} {unit}? Off day, you're still here and that's what counts!",
		},
		[]string{
			"RPE {rpe} at {weight} {unit}. Either the bar is heavier or the day is.",
			"Rated that {rpe}. Bold.",
		},
	)
	c.add(TriggerSkippedAccessory,
		[]string{
			"Skipped {exercise} today. Accessories build the base, try to get them in next time.",
			"Main work done, {exercise} skipped. Fine once, don't make it a habit.",
		},
		[]string{
			"Skipped {exercise}? All good, the big lifts got done!",
		},
		[]string{},
	)

	c.add(phaseTrigger(program.PhaseAccumulation),
		[]string{
			"Accumulation phase: volume now pays off later. Keep the reps crisp.",
			"Building the base. Consistency beats intensity this block.",
		},
		[]string{
			"Volume block! Every rep is a deposit in the gains bank!",
			"Accumulation phase, baby! Stack those sets!",
		},
		[]string{
			"Accumulation phase. Many reps. Much lifting.",
		},
	)
	c.add(phaseTrigger(program.PhaseIntensification),
		[]string{
			"Intensification: loads climb, volume drops. Stay sharp on technique.",
			"Heavier weeks ahead. Bar speed and bracing first.",
		},
		[]string{
			"It's getting HEAVY and you're READY!",
			"Intensification phase! Time to turn it up!",
		},
		[]string{
			"Intensification. The numbers get bigger. So do the sighs.",
		},
	)
	c.add(phaseTrigger(program.PhasePeaking),
		[]string{
			"Peaking block. Treat every single like a competition attempt.",
			"Peaking: low reps, high intent. Rest fully between sets.",
		},
		[]string{
			"PEAKING! You are becoming your strongest self!",
			"Peak week energy! Every single counts!",
		},
		[]string{
			"Peaking. Fewer reps, more staring at the bar.",
		},
	)
	c.add(phaseTrigger(program.PhaseCompetitionPrep),
		[]string{
			"Competition prep: rehearse your commands and your openers.",
			"Close to the platform now. Practice like it's meet day.",
		},
		[]string{
			"Meet prep mode! The platform is calling!",
			"Almost meet day! Lock in!",
		},
		[]string{
			"Competition prep. Soon you lift in front of judges. Fun.",
		},
	)
	c.add(phaseTrigger(program.PhaseTaper),
		[]string{
			"Taper week. Less is more; trust the work you've done.",
			"Taper: stay fresh, stay loose, sleep a lot.",
		},
		[]string{
			"TAPER TIME! Rest up, the big day is almost here!",
		},
		[]string{
			"Taper. Do less. You are good at that, presumably.",
		},
	)

	return c
}

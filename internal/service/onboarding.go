package service

import (
	"context"
	"fmt"
	"log"

	"fitbot/internal/config"
	"fitbot/internal/model"
	"fitbot/internal/schema"
)

const welcomeText = "Hey! I'm excited to help you on your fitness journey."

// Onboarding drives one conversation turn at a time: extract, merge,
// check completion, choose the next question. It holds no conversation
// state itself; history and collected data thread explicitly through
// every call, so independent conversations can run in parallel without
// locking.
type Onboarding struct {
	extractor Extractor
	policy    config.OnboardingConfig
}

// NewOnboarding creates the conversation orchestrator.
func NewOnboarding(extractor Extractor, policy config.OnboardingConfig) *Onboarding {
	return &Onboarding{
		extractor: extractor,
		policy:    policy,
	}
}

// Start opens a new conversation: empty state, no extraction call, the
// opening question for the first registry field.
func (o *Onboarding) Start() *model.TurnResult {
	first := schema.Fields()[0]
	msg := welcomeText + " " + first.Prompt
	return &model.TurnResult{
		Message:             msg,
		ConversationHistory: []model.ChatMessage{{Role: model.RoleBot, Content: msg}},
		CollectedData:       model.Profile{},
		IsComplete:          false,
		NextField:           first.Name,
	}
}

// Turn processes one user message: appends it to history, runs the
// extraction call over the full conversation, merges the candidates into
// the collected state and replies with either the next question or the
// completion summary. Extraction failures never break the turn; they
// degrade to an empty extraction and the same question is asked again.
func (o *Onboarding) Turn(ctx context.Context, userMessage string, history []model.ChatMessage, collected model.Profile) *model.TurnResult {
	if collected == nil {
		collected = model.Profile{}
	}

	// Terminal state: once complete, further user text cannot remove a
	// field, so skip extraction and echo the completion summary.
	if _, complete := Check(collected); complete {
		return o.completeResult(append(cloneHistory(history),
			model.ChatMessage{Role: model.RoleUser, Content: userMessage}), collected, "")
	}

	history = append(cloneHistory(history), model.ChatMessage{Role: model.RoleUser, Content: userMessage})

	var warning string
	extracted := model.Extraction{}
	if o.extractor != nil && o.extractor.IsEnabled() {
		result, err := o.extractor.Extract(ctx, history)
		if err != nil {
			warning = fmt.Sprintf("extraction unavailable: %v", err)
			log.Printf("Warning: %s, continuing with empty extraction", warning)
		} else if result != nil {
			extracted = result
		}
	} else {
		warning = "extraction unavailable: no extractor configured"
		log.Printf("Warning: %s", warning)
	}

	state := Merge(collected, extracted)
	o.applyTargetDefaults(state)

	missing, complete := Check(state)
	if complete {
		result := o.completeResult(history, state, warning)
		return result
	}

	msg := missing.Prompt
	history = append(history, model.ChatMessage{Role: model.RoleBot, Content: msg})
	return &model.TurnResult{
		Message:             msg,
		ConversationHistory: history,
		CollectedData:       state,
		IsComplete:          false,
		NextField:           missing.Name,
		Warning:             warning,
	}
}

func (o *Onboarding) completeResult(history []model.ChatMessage, state model.Profile, warning string) *model.TurnResult {
	mp := CalculateMetabolicProfile(state)
	msg := completionMessage(mp)
	history = append(history, model.ChatMessage{Role: model.RoleBot, Content: msg})
	return &model.TurnResult{
		Message:             msg,
		ConversationHistory: history,
		CollectedData:       state,
		IsComplete:          true,
		MetabolicProfile:    mp,
		DBFormat:            model.NewProfileRecord(state, mp),
		Warning:             warning,
	}
}

// applyTargetDefaults fills target height/weight from the current pair
// per the configured policy. Height has no goal that would change it, so
// the target defaults to the current value; weight defaults only when
// the goal is maintain.
func (o *Onboarding) applyTargetDefaults(state model.Profile) {
	if o.policy.DefaultTargetHeight {
		copyPairDefault(state, "current_height", "current_height_unit", "target_height", "target_height_unit")
	}
	if goal, _ := state.String("goal"); goal == "maintain" && o.policy.DefaultTargetWeightOnMaintain {
		copyPairDefault(state, "current_weight", "current_weight_unit", "target_weight", "target_weight_unit")
	}
}

func copyPairDefault(state model.Profile, srcValue, srcUnit, dstValue, dstUnit string) {
	if state.Has(dstValue) {
		return
	}
	v, okV := state.Number(srcValue)
	u, okU := state.String(srcUnit)
	if okV && okU {
		state[dstValue] = v
		state[dstUnit] = u
	}
}

func completionMessage(mp *model.MetabolicProfile) string {
	msg := "Thank you! Your profile is complete!\n\n" +
		"**Your Daily Targets:**\n" +
		fmt.Sprintf("- Calories: %.1f kcal\n", mp.DailyCalorieTarget) +
		fmt.Sprintf("- Protein: %.1fg | Carbs: %.1fg | Fat: %.1fg\n", mp.ProteinG, mp.CarbsG, mp.FatsG)
	if mp.EstimatedDaysToGoal > 0 {
		msg += fmt.Sprintf("\nEstimated time to goal: %d days", mp.EstimatedDaysToGoal)
	}
	return msg
}

func cloneHistory(history []model.ChatMessage) []model.ChatMessage {
	out := make([]model.ChatMessage, len(history))
	copy(out, history)
	return out
}

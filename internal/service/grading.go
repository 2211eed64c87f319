package service

import "event_passport_backend/internal/model"

// GradeAnswers 按位置逐题比对，字符串需完全相等（区分大小写、不去空格）；缺失的位置按答错计
func GradeAnswers(questions []model.Question, answers []string) ([]model.VisitAnswer, float64, bool) {
	if len(questions) == 0 {
		return nil, 0, true
	}

	results := make([]model.VisitAnswer, len(questions))
	correct := 0
	for i, q := range questions {
		userAnswer := ""
		if i < len(answers) {
			userAnswer = answers[i]
		}
		isCorrect := i < len(answers) && userAnswer == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		results[i] = model.VisitAnswer{
			Question:   q.Question,
			UserAnswer: userAnswer,
			IsCorrect:  isCorrect,
		}
	}

	score := float64(correct) / float64(len(questions)) * 100
	return results, score, score >= model.PassingScore
}

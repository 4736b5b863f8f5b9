package serviceImp

// ruleCrop is the deterministic cascade used whenever the model cannot answer.
func ruleCrop(n, ph, rainfall float64) string {
	switch {
	case rainfall > 200 && ph >= 6.0 && ph <= 7.5:
		return "rice"
	case rainfall < 80 && ph >= 6.0 && ph <= 7.8:
		return "wheat"
	case ph < 5.8:
		return "tea"
	case ph > 7.8 && n < 50:
		return "millets"
	default:
		return "maize"
	}
}

package replacement

//go:generate mockgen -destination=mock_replacer.go -package=replacement github.com/b63/shepherd-sim/internal/replacement Replacer

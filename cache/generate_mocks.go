package cache

//go:generate mockgen -destination=mock_below_test.go -package=cache_test github.com/b63/shepherd-sim/cache Below
//go:generate mockgen -destination=mock_packet_test.go -package=cache_test github.com/b63/shepherd-sim/cache Packet

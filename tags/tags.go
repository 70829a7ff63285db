package tags

import "github.com/yohamta/donburi"

var (
	Petal  = donburi.NewTag().SetName("Petal")
	Flower = donburi.NewTag().SetName("Flower")
)

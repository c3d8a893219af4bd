package fx

var (
	treatShouts       = []string{"Yum!", "Woof!", "Tasty!", "Nom nom!", "Yummy!", "CHOMP!", "Snack attack!", "*munch munch*"}
	treatReactions    = []string{"BURP!", "Excuse me!", "More plz!", "Is that bacon?", "Nom :)"}
	treatFunnies      = []string{"BURP!", "Hiccup!", "Mmmmm!", "More please!"}
	catShouts         = []string{"Meow!", "Kitty!", "So fluffy!", "Purrrr!", "Found you!", "CAT-ASTROPHIC!", "Meowgnificent!"}
	catReactions      = []string{"Friend?", "KITTY!", "Chase?", "Boop the snoot!", "Cat fren <3"}
	boneShouts        = []string{"Crunchy!", "My bone!", "Chomp!", "Delicious!", "Gnaw gnaw!", "CRONCH!", "Best day ever!"}
	powerUpShouts     = []string{"ZOOM!", "So fast!", "Wheee!", "Speed boost!", "NYOOOM!", "ZOOMIES ACTIVATED!", "I am speed!"}
	squirrelShouts    = []string{"CAUGHT ME!", "NYOOM!", "Acorn thief!", "You're fast!", "MY NUTS!", "Squeeeeak!"}
	squirrelReactions = []string{"GOT ONE!", "Speedy boi!", "Come back!", "SQUIRREL!!!", "Zoom zoom!"}
)

var sillyEvents = []struct {
	text string
	size float64
}{
	{"SQUIRREL!!!", 45},
	{"Who's a good dog?", 35},
	{"I smell treats!", 30},
	{"Pet me!", 28},
	{"Walkies later?", 32},
	{"* WOOF! *", 40},
}

package sentiment

var defaultIntensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.2,
	"extremely":  1.5,
	"highly":     1.3,
	"incredibly": 1.4,
	"quite":      1.1,
	"so":         1.2,
	"too":        1.1,
}

var defaultLexicon = map[string]entry{
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"excellent":   {1.0, 1.0},
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"strong":      {0.43, 0.73},
	"solid":       {0.25, 0.5},
	"robust":      {0.4, 0.5},
	"reliable":    {0.5, 0.6},
	"efficient":   {0.5, 0.6},
	"effective":   {0.6, 0.8},
	"successful":  {0.75, 0.95},
	"confident":   {0.5, 0.83},
	"clear":       {0.1, 0.38},
	"simple":      {0.0, 0.36},
	"easy":        {0.43, 0.83},
	"useful":      {0.3, 0.0},
	"helpful":     {0.5, 0.5},
	"important":   {0.4, 1.0},
	"essential":   {0.4, 0.7},
	"significant": {0.38, 0.88},
	"powerful":    {0.3, 1.0},
	"scalable":    {0.3, 0.4},
	"fast":        {0.2, 0.6},
	"accurate":    {0.4, 0.57},
	"correct":     {0.0, 0.0},
	"right":       {0.29, 0.54},
	"optimal":     {0.5, 0.6},
	"nice":        {0.6, 1.0},
	"happy":       {0.8, 1.0},
	"love":        {0.5, 0.6},
	"enjoy":       {0.4, 0.5},
	"interesting": {0.5, 0.5},
	"perfect":     {1.0, 1.0},
	"positive":    {0.23, 0.55},
	"proud":       {0.8, 1.0},
	"well":        {0.0, 0.0},
	"new":         {0.14, 0.45},
	"modern":      {0.2, 0.3},
	"common":      {-0.3, 0.5},
	"general":     {0.05, 0.5},
	"specific":    {0.0, 0.13},
	"complex":     {-0.3, 0.4},
	"difficult":   {-0.5, 1.0},
	"hard":        {-0.29, 0.54},
	"bad":         {-0.7, 0.67},
	"poor":        {-0.4, 0.6},
	"worse":       {-0.4, 0.6},
	"worst":       {-1.0, 1.0},
	"wrong":       {-0.5, 0.9},
	"terrible":    {-1.0, 1.0},
	"awful":       {-1.0, 1.0},
	"slow":        {-0.3, 0.39},
	"weak":        {-0.38, 0.63},
	"unclear":     {-0.1, 0.4},
	"confusing":   {-0.3, 0.6},
	"fragile":     {-0.3, 0.5},
	"expensive":   {-0.5, 0.7},
	"risky":       {-0.4, 0.6},
	"broken":      {-0.4, 0.4},
	"failed":      {-0.5, 0.3},
	"unsure":      {-0.25, 0.89},
	"maybe":       {0.0, 0.0},
	"probably":    {0.0, 0.0},
	"sad":         {-0.5, 1.0},
	"hate":        {-0.8, 0.9},
	"boring":      {-1.0, 1.0},
	"useless":     {-0.5, 0.0},
}

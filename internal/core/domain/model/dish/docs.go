// Package dish contains the Dish aggregate and its field validation rules.
// A dish may only enter the store through the validated New constructor,
// guaranteeing the store never holds an ill-formed menu item.
package dish
